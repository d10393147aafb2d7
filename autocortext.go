// Package autocortext provides a Go SDK for the AutoCortext API.
//
// AutoCortext is a troubleshooting assistant for industrial machinery.
// This SDK provides a clean, idiomatic Go interface to send a conversation
// of chat messages to the API and receive the assistant's reply.
//
// # Installation
//
// To install the SDK, use go get:
//
//	go get github.com/autocortext/autocortext-go
//
// # Quick Start
//
// Load credentials from the environment and ask a question:
//
//	package main
//
//	import (
//	    "context"
//	    "fmt"
//	    "log"
//
//	    "github.com/autocortext/autocortext-go"
//	)
//
//	func main() {
//	    // Reads AUTOCORTEXT_API_KEY and AUTOCORTEXT_ORG_ID
//	    // (a local .env file is sourced if present).
//	    creds, err := autocortext.LoadCredentials()
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    client, err := autocortext.NewClient(creds)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    reply, err := client.Troubleshoot(context.Background(), autocortext.Conversation{
//	        {ID: 1, Role: autocortext.RoleAssistant, Content: "How can I help you?"},
//	        {ID: 2, Role: autocortext.RoleUser, Content: "The conveyor motor won't start."},
//	    })
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    for _, msg := range reply {
//	        fmt.Printf("[%s] %s\n", msg.Role, msg.Content)
//	    }
//	}
//
// # Client Configuration
//
// The client can be configured using functional options:
//
//	client, err := autocortext.NewClient(creds,
//	    autocortext.WithBaseURL("https://api.autocortext.com"),
//	    autocortext.WithTimeout(time.Minute),
//	    autocortext.WithHTTPClient(customHTTPClient),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Error Handling
//
// The SDK provides typed errors for the three failure classes:
//
//	reply, err := client.Troubleshoot(ctx, conv)
//	if err != nil {
//	    var cfgErr *autocortext.ConfigError
//	    var valErr *autocortext.ValidationError
//	    var apiErr *autocortext.APIError
//	    switch {
//	    case errors.As(err, &cfgErr):
//	        // Missing or malformed credentials
//	    case errors.As(err, &valErr):
//	        // The conversation itself is invalid
//	    case errors.As(err, &apiErr):
//	        // The remote call failed; apiErr.Status carries
//	        // the HTTP status when one was received
//	    }
//	}
//
// The SDK never retries on its own. An [APIError] carries enough detail
// (status code, wrapped cause) for the caller to make its own retry
// decisions.
//
// # Transport
//
// The actual network call goes through the [Transport] interface. The
// default transport speaks the AutoCortext HTTP protocol; substitute a
// test double with [WithTransport] to exercise the client without a
// network:
//
//	client, _ := autocortext.NewClient(creds, autocortext.WithTransport(fakeTransport))
//
// # Thread Safety
//
// The [Client] is immutable after construction and safe for concurrent
// use by multiple goroutines. Each method call is independent and does
// not share state.
package autocortext
