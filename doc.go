// Package mailglass provides a Go client SDK for the MailGlass
// mailbox-data REST API.
//
// Every request is signed with HMAC-SHA1 using the application's consumer
// key/secret, plus a per-account token pair once a user has authorized
// access. The client handles signing, parameter encoding, and response
// decoding; applications describe calls as Request values and execute them
// through the client.
//
// Basic usage:
//
//	client, err := mailglass.New(consumerKey, consumerSecret)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	messages, err := client.DoList(ctx, client.GetMessages(nil))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// New accounts are connected with the three-step handshake on AuthFlow:
// Begin (returns a redirect URL for the user's browser), ExchangeToken
// (trades the connect token from the callback for the account payload),
// and Complete (stores the credentials on the client).
package mailglass
