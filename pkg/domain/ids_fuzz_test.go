package domain

import (
	"strings"
	"testing"
)

// FuzzParseSalesmanID checks the UUID parsers never panic and that accepted
// values round-trip through their string form.
func FuzzParseSalesmanID(f *testing.F) {
	f.Add("")
	f.Add("550e8400-e29b-41d4-a716-446655440000")
	f.Add("00000000-0000-0000-0000-000000000000")
	f.Add("not-a-uuid")
	f.Add("'; DROP TABLE salesmen;--")
	f.Add("550e8400-e29b-41d4-a716-446655440000\x00suffix")

	f.Fuzz(func(t *testing.T, input string) {
		parsed, err := ParseSalesmanID(input)
		if err != nil {
			return
		}
		if parsed.IsNil() {
			t.Error("accepted a nil salesman id")
		}
		roundTrip, err := ParseSalesmanID(parsed.String())
		if err != nil {
			t.Errorf("accepted id failed round-trip: %v", err)
		}
		if roundTrip != parsed {
			t.Error("round-trip changed the id value")
		}
	})
}

// FuzzParseUUIDConsistency checks that the two UUID-backed ID types accept
// and reject the same inputs, since they share one validation path.
func FuzzParseUUIDConsistency(f *testing.F) {
	f.Add("550e8400-e29b-41d4-a716-446655440000")
	f.Add("")
	f.Add("invalid")

	f.Fuzz(func(t *testing.T, input string) {
		_, errSalesman := ParseSalesmanID(input)
		_, errCredit := ParseCreditID(input)
		if (errSalesman == nil) != (errCredit == nil) {
			t.Error("inconsistent parsing across UUID id types")
		}
	})
}

// FuzzParseLicenseID checks the remote-identifier parser: anything non-blank
// is accepted verbatim after trimming, and never panics.
func FuzzParseLicenseID(f *testing.F) {
	f.Add("")
	f.Add("   ")
	f.Add("lic-42")
	f.Add("  lic-42  ")
	f.Add("\x00")

	f.Fuzz(func(t *testing.T, input string) {
		parsed, err := ParseLicenseID(input)
		if err != nil {
			if strings.TrimSpace(input) != "" {
				t.Error("rejected a non-blank license id")
			}
			return
		}
		if parsed.String() == "" {
			t.Error("accepted license id is empty")
		}
		if parsed.String() != strings.TrimSpace(input) {
			t.Error("accepted license id was altered beyond trimming")
		}
	})
}
