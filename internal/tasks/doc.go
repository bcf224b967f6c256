// Package tasks runs multi-step operations on top of the resolver and the metadata service
// with non-blocking progress reporting.
//
// # Operations
//
//  1. [ResolveAll] : resolve many inputs with a bounded worker pool, results in input order
//  2. [CollectVideos] : follow channel upload pages until a page limit or the last page
//
// # Progress Reporting
//
// Operations accept an optional channel of [ProgressUpdate]. Sends use select with default,
// so a slow or absent reader never stalls the operation.
package tasks
