// Package soso defines the public contract for converting discipline
// metadata records into SOSO (Science-On-Schema.org) Dataset JSON-LD.
//
// A Strategy is one crosswalk: a set of independent rules, one per SOSO
// property, each evaluated against a single parsed source record. A rule
// either produces a value shaped for the target vocabulary or nil, the
// Absent marker, which causes the property to be left out of the output.
//
// Extract runs every rule of a Strategy, applies DeleteNull to the results
// and returns the property set keyed by SOSO property name.
package soso
