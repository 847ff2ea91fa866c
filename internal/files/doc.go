// Package files provides filesystem helpers for the dataset toolkit:
// discovery of dataset archives in the data directory and safe extraction of
// downloaded zips. Paths come from the config package; nothing in here talks
// to the network.
package files
