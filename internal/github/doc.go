// Package github provides repository metadata and clone URL selection via
// the gh CLI.
//
// nut shells out to gh instead of speaking the GitHub API directly so
// that authentication, enterprise hosts, and rate limiting stay the gh
// CLI's problem. The clone pipeline itself never talks to this package:
// it receives the resolved clone URL and metadata as plain values.
package github
