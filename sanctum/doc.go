// Package sanctum provides a client for the Sanctum API, which stores guild
// state, timers and moderation infractions for the bot.
//
// Every resource method is a thin mapping onto a fixed route and delegates to
// Client.Request. Request and response bodies are opaque JSON: requests take a
// Payload (or a []string for prefixes) and responses are returned decoded as
// map[string]any or []any, with numbers kept as json.Number.
//
// # Usage
//
//	logger := zerolog.New(os.Stderr)
//	client, err := sanctum.NewClient("https://sanctum.example.com/api", token, logger)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer client.Close()
//
//	guild, err := client.GetGuild(ctx, 42)
//
// # Error Handling
//
// Responses outside 2xx are returned as *HTTPError carrying the status code and
// decoded body. A 404 additionally matches ErrNotFound:
//
//	cfg, err := client.GetGuildBotConfig(ctx, guildID)
//	if sanctum.IsNotFound(err) {
//		// guild has no configuration yet
//	}
//
// Transport failures (DNS, refused connections, timeouts) are returned wrapped
// and are not converted to *HTTPError. Requests made after Close fail with
// ErrClientClosed.
package sanctum
