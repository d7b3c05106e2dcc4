// Package json is the JSON codec used for plan summaries.
//
// On linux, darwin and windows for amd64 and arm64 it is backed by
// [github.com/bytedance/sonic] in its std-compatible configuration, and
// SetConfig swaps that configuration. Other platforms fall back to
// encoding/json, which sonic does not cover; there the package has no
// SetConfig and always encodes with encoding/json defaults.
package json
