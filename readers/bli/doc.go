// Package bli decodes Bio-Layer Interferometry runs exported by Octet
// instruments as one .frd file per sensor. A file is XML with a fixed
// vendor schema; each kinetic step becomes one measurement, so a run
// read from several sensors emits the cross product of sensors and
// steps. Protocol fields shared by every sensor collapse later through
// the engine's array dedup.
package bli
