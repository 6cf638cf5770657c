// Package readers holds what the vendor decoders share: the decoder
// contract, input set validation, and the raw trace codec common to the
// supported instrument families.
//
// Key capabilities:
//   - Reader, the contract each family package (mst, bli, spr) satisfies
//   - Single, the input check for formats storing a whole run in one file
//   - Float32Slice, the little-endian float32 buffer decoder every
//     family's raw data uses
//   - LogUnmapped, debug reporting for extracted fields the template
//     table cannot place
//
// Decoders emit ordered convert.Measurement values; everything after
// extraction (projection, composition, folding, rendering) is the
// convert package's business.
package readers
