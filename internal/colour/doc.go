// Package colour converts, compares and mixes CSS colour values.
//
// A Value holds a colour in one of the CSS Color 4 spaces (or an opaque
// custom "--" profile) as typed components, so that "none" and percentages
// survive until a numeric result is needed. Conversion routes every pair of
// built-in spaces through relative XYZ, adapting between D50 and D65 with
// Bradford; results can be gamut mapped into an RGB space by reducing chroma
// in CIE Lab or OKLab until the clipped colour is within a just noticeable
// difference.
package colour
