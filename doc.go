// Package tonclient provides high-level helpers for talking to the TON blockchain through
// the tonlib JSON interface.
//
// The native engine is asynchronous: requests go in, responses come out in any order.
// The bridge package pairs them by a correlation id written into each request, the client
// package builds typed TON operations on top, and this package glues both with config
// loading and library discovery. Two entry points are exposed:
//  1. NewClient – returns an initialized client and
//  2. NewServer – returns a JSON-RPC server backed by such a client.
//
// Example:
//
//	cli, err := tonclient.NewClient(ctx, &tonclient.ClientOptions{LibraryPath: "/usr/lib/libtonlibjson.so"})
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer cli.Close()
//	state, ok := cli.GetAccountState(ctx, "EQCD39VS5jcptHL8vMjEXrzGaRcCVYto7HUn4bpAOg8xqB2N")
package tonclient
