package domain

// Dimension names an intent dimension that can be derived or clarified.
type Dimension string

const (
	DimensionAvailability Dimension = "availability"
	DimensionCompliance   Dimension = "compliance"
	DimensionCost         Dimension = "cost"
	DimensionRuntime      Dimension = "runtime"
	DimensionDomain       Dimension = "domain"
)

// Dimensions lists intent dimensions in clarification priority order.
var Dimensions = []Dimension{
	DimensionAvailability, DimensionCompliance, DimensionCost, DimensionRuntime, DimensionDomain,
}

// Confidence grades how sure a derivation rule is.
type Confidence string

const (
	ConfidenceHigh    Confidence = "high"
	ConfidenceMedium  Confidence = "medium"
	ConfidenceLow     Confidence = "low"
	ConfidenceUnknown Confidence = "unknown"
)

// SignalSource records where a signal value came from.
type SignalSource string

const (
	SourceUser     SignalSource = "user"
	SourceExplicit SignalSource = "explicit"
	SourceDerived  SignalSource = "derived"
	SourceNone     SignalSource = "none"
)

func (s SignalSource) precedence() int {
	switch s {
	case SourceUser:
		return 3
	case SourceExplicit:
		return 2
	case SourceDerived:
		return 1
	}
	return 0
}

// IntentSignal is one inferred dimension value with its provenance.
type IntentSignal struct {
	Value      string       `json:"value,omitempty"`
	Confidence Confidence   `json:"confidence"`
	Source     SignalSource `json:"source"`
	Rationale  string       `json:"rationale,omitempty"`
}

// UnknownSignal returns a signal for a dimension no rule could classify.
func UnknownSignal() IntentSignal {
	return IntentSignal{Confidence: ConfidenceUnknown, Source: SourceNone}
}

// Known reports whether the signal carries a usable value.
func (s IntentSignal) Known() bool {
	return s.Value != "" && s.Confidence != ConfidenceUnknown && s.Confidence != ""
}

// Firm reports whether the signal is known with at least medium confidence.
func (s IntentSignal) Firm() bool {
	return s.Known() && (s.Confidence == ConfidenceHigh || s.Confidence == ConfidenceMedium)
}

// Mandatory reports whether the value was stated rather than inferred.
func (s IntentSignal) Mandatory() bool {
	return s.Known() && (s.Source == SourceExplicit || s.Source == SourceUser)
}

// ArchitecturalIntent is the derived judgment about an application's needs.
// Values are replaced only through With or Merge, which return copies.
type ArchitecturalIntent struct {
	Availability IntentSignal `json:"availability"`
	Compliance   IntentSignal `json:"compliance"`
	Cost         IntentSignal `json:"cost"`
	Runtime      IntentSignal `json:"runtime"`
	Domain       IntentSignal `json:"domain"`
	Treatment    string       `json:"treatment,omitempty"`
	Criticality  string       `json:"criticality,omitempty"`
}

// Signal returns the signal for a dimension.
func (i ArchitecturalIntent) Signal(d Dimension) IntentSignal {
	switch d {
	case DimensionAvailability:
		return i.Availability
	case DimensionCompliance:
		return i.Compliance
	case DimensionCost:
		return i.Cost
	case DimensionRuntime:
		return i.Runtime
	case DimensionDomain:
		return i.Domain
	}
	return UnknownSignal()
}

// With returns a copy of the intent with one dimension replaced.
func (i ArchitecturalIntent) With(d Dimension, s IntentSignal) ArchitecturalIntent {
	switch d {
	case DimensionAvailability:
		i.Availability = s
	case DimensionCompliance:
		i.Compliance = s
	case DimensionCost:
		i.Cost = s
	case DimensionRuntime:
		i.Runtime = s
	case DimensionDomain:
		i.Domain = s
	}
	return i
}

// Merge combines two intents dimension by dimension. The signal with the
// stronger source wins (user over explicit over derived over none); on a tie
// the receiver's signal is kept.
func (i ArchitecturalIntent) Merge(other ArchitecturalIntent) ArchitecturalIntent {
	out := i
	for _, d := range Dimensions {
		if other.Signal(d).Source.precedence() > i.Signal(d).Source.precedence() {
			out = out.With(d, other.Signal(d))
		}
	}
	if out.Treatment == "" {
		out.Treatment = other.Treatment
	}
	if out.Criticality == "" {
		out.Criticality = other.Criticality
	}
	return out
}

// UnknownDimensions lists dimensions without a usable value, in priority order.
func (i ArchitecturalIntent) UnknownDimensions() []Dimension {
	var out []Dimension
	for _, d := range Dimensions {
		if !i.Signal(d).Known() {
			out = append(out, d)
		}
	}
	return out
}
