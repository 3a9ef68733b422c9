// Package aid provides parsing and formatting for ArtifactDB IDs.
//
// An ArtifactDB ID (AID) references a single artifact file within one
// storage instance:
//
//	<project_id>:<path>@<version>
//
// e.g. "PROJ1:report.html@3". The version suffix is optional: an AID
// without "@" refers to the artifact independent of any version.
//
// # Core Concepts
//
//  1. ArtifactID: Immutable value object holding project ID, path, and
//     version. Construct with New or Parse; fields never change after
//     construction.
//
//  2. Storage keys: Every artifact also has an object-store key of the
//     form "project/version/path". ParseKey and ArtifactID.Key convert
//     between the two representations, and ParseARN extracts an
//     ArtifactID from a full S3 object ARN.
//
//  3. Nested GPRNs: A project ID may itself be a GPRN (a cross-service
//     resource name, see package gprn). Parse recognizes the "gprn:"
//     prefix and keeps the embedded name intact as the project component.
//
// # Usage Examples
//
//	id, err := aid.Parse("PROJ1:report.html@3")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	id.ProjectID() // "PROJ1"
//	id.Path()      // "report.html"
//	id.Version()   // "3"
//	id.String()    // "PROJ1:report.html@3"
//
// ArtifactID implements json.Marshaler/Unmarshaler and sql.Scanner/
// driver.Valuer, so it can be stored directly in API payloads and
// database columns.
//
// All functions are pure and safe for concurrent use.
package aid
