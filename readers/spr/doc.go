// Package spr decodes Surface Plasmon Resonance runs stored as Biacore
// evaluation files, which are OLE compound documents. Every stream named
// XYData holds one flow cell's sensorgram as a packed float32 buffer;
// the flow cell number rides in the stream's root entry name. One file
// holds one run.
package spr
