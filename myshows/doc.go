// Package myshows provides a client for the MyShows JSON-RPC API.
//
// MyShows tracks watched TV episodes and movies. The service exposes two
// disjoint JSON-RPC endpoint families: v2, authenticated with an OAuth
// bearer token, and v3, authenticated with a session cookie. Each Method
// belongs to exactly one of them and the client routes calls accordingly.
//
// # Usage
//
// Create a client, log in, and bind the session:
//
//	logger := zerolog.New(os.Stderr)
//	client, err := myshows.NewClient(myshows.Credentials{
//		ClientID:     "app-id",
//		ClientSecret: "app-secret",
//		Username:     "user",
//		Password:     "pass",
//	}, logger, myshows.WithTimeout(10*time.Second))
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	ctx := context.Background()
//	session, err := client.Login(ctx)
//	if err != nil {
//		log.Fatal(err)
//	}
//	client = client.WithSession(session)
//
//	reply, err := client.GetShowByID(ctx, 42)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(reply.Value.Title)
//
// Sessions are values. The client never stores headers as a side effect of
// a call, so a Client may be shared between goroutines. Nothing refreshes an
// expired token; log in again and rebind.
//
// Procedures without a dedicated wrapper are reachable with Generic, or
// with Invoke and a Procedure describing the param and result types.
//
// # Error Handling
//
// Every failure is a *Error with one of three kinds:
//
//   - KindAuth: an auth endpoint rejected the credentials
//   - KindRPC: the response carried no truthy result; Data holds the
//     server's error member verbatim
//   - KindTransport: the request failed, the status was not 2xx, or the
//     body was not JSON
//
//	if e, ok := myshows.AsError(err); ok && e.IsRPC() {
//		fmt.Println(e.Code, e.Message)
//	}
package myshows
