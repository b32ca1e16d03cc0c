// Package resolver turns a stream of key events into resolved payloads by
// walking a binding trie.
//
// # Phases
//
// A Resolver is always in one of three phases:
//
//  1. Idle: nothing typed since the last resolution
//  2. Count: accumulating a numeric prefix such as "12"
//  3. Pending: inside the trie, waiting for the next key of a sequence
//
// Digits typed in Idle or Count extend the count, except that a leading "0"
// is looked up in the trie (it is the line-start motion in Vim). Once a
// sequence is pending every key, digits included, is a trie key.
//
// Reaching a leaf resolves the sequence with the accumulated count; a key
// with no binding reports NoMatch. Both return the resolver to Idle.
// Escape cancels from any phase.
//
// # Usage
//
//	r := resolver.New(root)
//	for ev := range events {
//	    res := r.Feed(ev)
//	    if res.Status == resolver.StatusResolved {
//	        run(res.Payload, res.Count)
//	    }
//	}
package resolver
