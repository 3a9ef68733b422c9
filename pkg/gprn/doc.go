// Package gprn provides parsing, validation, and formatting for Genomics
// Platform Resource Names (GPRNs).
//
// A GPRN is a colon-delimited resource name, analogous to a cloud ARN,
// that identifies a resource across environments and services:
//
//	gprn:environment:service:placeholder:type-id:resource-id
//
// e.g. "gprn:dev:resultsdb::artifact:GPA2:/file/one@3". Segment position
// carries meaning, not segment presence: omitted segments are empty
// strings, and the canonical form always contains exactly five colons
// after the prefix. An empty environment means production ("prd") — the
// stored value stays empty and EffectiveEnvironment exposes the default.
//
// # Core Concepts
//
//  1. GPRN: Immutable value object over the five segments. Construct
//     with New or Parse.
//
//  2. Resource: The trailing resource-id segment has a grammar of its
//     own, selected by the type-id. An "artifact" resource embeds an
//     ArtifactDB ID (see package aid), a "project" or "changelog"
//     resource embeds "project_id[@version]", and other types are
//     opaque. Resource resolution is lazy: call GPRN.Resource.
//
//  3. Ancestry: Every GPRN sits in a hierarchy (artifact version below
//     project below service below environment). Ancestors, Lineage, and
//     LCA walk it.
//
// # Usage Examples
//
//	g, err := gprn.Parse("gprn::myapi::artifact:PROJ1:report.html@3")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	g.Service()                // "myapi"
//	g.EffectiveEnvironment()   // "prd"
//	res, _ := g.Resource()
//	res.Artifact().ProjectID() // "PROJ1"
//
// All functions are pure and safe for concurrent use.
package gprn
