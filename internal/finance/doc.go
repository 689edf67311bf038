// Package finance contains the bookkeeping calculations: VAT splitting, asset
// depreciation, the small-business investment deduction (KIA), the quarterly
// VAT return, the financial summary and the company valuation.
//
// Every function is pure. Callers pass in snapshots of ledger records together
// with the tax rules for the year and get plain values back. Nothing is cached:
// book values depend on the reference time and must be recomputed per call.
//
// Money is float64 throughout. Rounding to cents happens only when values are
// shown or written (see Round and FormatEuro). Malformed numeric input propagates
// as NaN or Inf, except for the company value which is clamped to zero.
package finance
