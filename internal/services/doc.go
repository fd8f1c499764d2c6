// Package services orchestrates a conversion run: it validates the run
// configuration, prepares the output directory and drives the scanner.
package services
