// Package reelscout is a Go client that finds movies in a TMDB-compatible metadata
// provider by cast, director and genre names and returns them as normalized records.
//
// All provider calls that fetch the genre catalog or per-movie details pass through a
// sliding-window rate gate (30 calls per 11 seconds by default). Calls over the budget
// are deferred, never rejected. Point several processes at the same Redis key with
// WithRedisWindow to share one budget.
//
//	client, err := reelscout.New(ctx, reelscout.WithAPIKey(os.Getenv("TMDB_API_KEY")))
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
//
//	records, err := client.Execute(ctx, []reelscout.Criteria{{
//	    Director: []string{"Frank Darabont"},
//	    Category: []string{"Drama"},
//	}}, 5)
//
// Only the first Criteria of a call is honored. limit <= 0 returns every match.
package reelscout
