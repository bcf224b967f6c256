// Package resolver turns user supplied strings into a [Reference] naming a YouTube channel or video.
//
// # Inputs
//
// [Resolver.Resolve] accepts anything: bare channel IDs ("UC" + 22 characters), bare video IDs
// (11 characters), full or scheme-less URLs, and usernames. It never rejects input; shapes it
// does not recognize come back as an [Unknown] reference.
//
// # URL shapes
//
// URLs are matched against an ordered rule table; the first rule that matches decides the result:
//
//	youtu.be/<id>                 video
//	youtube.com/watch?v=<id>      video
//	youtube.com/<name>            channel, via lookup of "<name>"
//	youtube.com/user/<name>       channel, via lookup of "user/<name>"
//	youtube.com/channel/<id>      channel when <id> is well formed
//
// # Lookup
//
// Usernames and vanity paths carry no channel ID, so the resolver asks a [ChannelLookup] for the
// canonical one. A failed lookup is the only error [Resolver.Resolve] returns; it wraps
// [shared.ErrLookupFailed] and comes with a zero [Reference].
package resolver
