package client

import "strings"

// Edition is the feature tier of the connected server.
type Edition int

const (
	EditionBase Edition = iota
	EditionExtended
)

func (e Edition) String() string {
	if e == EditionExtended {
		return "extended"
	}
	return "base"
}

// EditionFromStatus classifies a server by its short edition name; "PRO" is
// the only extended edition.
func EditionFromStatus(s *Status) Edition {
	if s != nil && strings.EqualFold(strings.TrimSpace(s.EditionShort), "PRO") {
		return EditionExtended
	}
	return EditionBase
}

// Feature is an extended-only capability of the server.
type Feature string

const (
	FeatureSmartProxy  Feature = "smart-proxy"
	FeatureTrustedKeys Feature = "trusted-keys"
	FeaturePubSub      Feature = "pub-sub"
	FeatureLicensing   Feature = "licensing"
)

// ExtendedFeatures lists every feature that needs the extended edition.
var ExtendedFeatures = []Feature{FeatureSmartProxy, FeatureTrustedKeys, FeaturePubSub, FeatureLicensing}

// Gate answers feature questions from an edition fixed at construction.
type Gate struct {
	edition Edition
}

// NewGate returns a gate for edition.
func NewGate(edition Edition) Gate {
	return Gate{edition: edition}
}

// Edition returns the edition the gate was built for.
func (g Gate) Edition() Edition {
	return g.edition
}

// Supports reports whether feature is available. Features unknown to the
// gate are treated as base features.
func (g Gate) Supports(feature Feature) bool {
	for _, f := range ExtendedFeatures {
		if f == feature {
			return g.edition == EditionExtended
		}
	}
	return true
}

// Require fails with NotSupported when feature is unavailable. It performs no I/O.
func (g Gate) Require(feature Feature) error {
	if g.Supports(feature) {
		return nil
	}
	return &Error{Kind: KindNotSupported, Resource: string(feature)}
}
