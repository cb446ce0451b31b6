// Package ioutils provides file system and image codec utilities.
//
// This package contains functions for:
//   - Discovering audio files under a library root
//   - Locking a library root against concurrent runs
//   - Appending to run log files
//   - Decoding and encoding cover art images
//
// # Discovery
//
//	files, err := ioutils.Discover("/music", []string{".mp3"})
//
// Files are returned sorted so runs process them in a stable order.
//
// # Image Codec
//
// The ImageService decodes JPEG, PNG, GIF, WebP, BMP and TIFF input and
// always encodes JPEG:
//
//	svc := ioutils.NewImageService(90)
//	w, h, err := svc.Dimensions(coverBytes)
//	img, err := svc.Decode(coverBytes)
//	jpegBytes, err := svc.Encode(img)
package ioutils
