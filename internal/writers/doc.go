// Package writers renders a finished distance matrix.
//
// Design:
//   - Writers own all presentation knowledge (TSV layout, number formatting, JSON).
//   - The engine and assembler stay domain-only; app only picks a format.
//   - JSON goes through pkg/api (v1) for a stable wire format.
package writers
