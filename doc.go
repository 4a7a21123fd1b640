// Package iso20022 provides the validation core shared by the ISO 20022
// message packages:
//
// - Constrained simple types (Scalar) with XSD facets: length, pattern, minInclusive
// - Closed code lists (EnumSet) that fail closed on unknown tags
// - A reflection walker (Validate/Is) over records, choices and lists
// - A stable error model via Issues (JSON Pointer, code, message)
// - A namespace registry used by the codec package to decode documents
//
// Design policy:
// - Message types live in their own packages (common, camt, acmt, auth, head)
//   and declare facets, not validation bodies.
// - Encoding lives under codec/, the CLI under cmd/isoskema.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	doc := &camt.Document{...}
//	if err := doc.Validate(); err != nil {
//		iss, _ := iso20022.AsIssues(err)
//		for _, it := range iss {
//			fmt.Println(it.Location(), it.Code)
//		}
//	}
//
//	ok := iso20022.Is(common.CountryCode("US"))
package iso20022
