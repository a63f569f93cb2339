// Package steam is a client for the Steam Web API.
//
// Every method sends a single GET request (two when a vanity name has to be
// resolved first), unwraps the response envelope and checks it. Nothing is
// cached and nothing is retried.
//
//	client, err := steam.New(logger, apiKey)
//	if err != nil {
//		return err
//	}
//
//	bans, err := client.GetPlayerBans(ctx, "gabelogannewell")
//	if errors.Is(err, steam.ErrNotFound) {
//		// unknown vanity name
//	}
package steam
