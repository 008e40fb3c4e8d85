// Package writers turns audit Records into serialized outputs.
//
// Design:
//   - Writers own all presentation knowledge (NA rendering, rounding,
//     semicolon joining, tag counting for the digest).
//   - audit stays domain-only; app stays orchestration-only.
//   - JSONL goes through pkg/api (v1) for a stable wire format.
package writers
