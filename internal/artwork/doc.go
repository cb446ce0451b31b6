// Package artwork decides what to do with the cover art embedded in each
// audio file and normalizes images to the canonical square size.
//
// # Geometry
//
// Classify compares artwork dimensions against the target size:
//
//	artwork.ClassifyDimensions(400, 400, 400) // VerdictExact
//	artwork.ClassifyDimensions(399, 400, 400) // VerdictTooSmall
//	artwork.ClassifyDimensions(401, 400, 400) // VerdictTooLarge
//
// # Normalization
//
// Fit scales an image down (never up) so it fits inside target×target and
// centers it on a black square canvas.
//
// # Decisions
//
// Engine combines tag contents, the geometry verdict and the artwork provider
// into a single model.Outcome per file:
//
//	engine := artwork.NewEngine(tagger, itunesClient, imageService, artwork.Options{TargetSize: 400})
//	res, err := engine.Decide(ctx, rec)
//	fmt.Println(res.Outcome) // KEPT, RESIZED, REPLACED, ADDED, ...
//
// A Decide call performs at most one provider fetch and at most one tag
// write.
package artwork
