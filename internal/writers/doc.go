// Package writers turns conversion results into serialized outputs.
//
// Design:
//   - Writers own all presentation knowledge (TSV, JSON, JSONL, YAML).
//   - The core stays arithmetic-only; the pipeline stays orchestration-only.
//   - Every format goes through pkg/api (v1) for a stable wire format.
package writers
