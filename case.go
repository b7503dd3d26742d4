// Package medreport defines the case data model and render configuration
// for medico-legal report generation.
//
// A Case is the root aggregate describing one claimant's file. Every
// section is optional: the renderer substitutes explicit placeholders for
// absent data rather than skipping fields. The Case is treated as an
// immutable snapshot for the duration of one render call; construction and
// mutation belong to the calling layer.
package medreport

import (
	"strings"

	"github.com/goccy/go-json"
)

// Case is the root aggregate passed into the report renderer.
type Case struct {
	CaseNumber string `json:"caseNumber"`

	ClaimantDetails       *ClaimantDetails       `json:"claimantDetails,omitempty"`
	AccidentDetails       *AccidentDetails       `json:"accidentDetails,omitempty"`
	PhysicalInjury        *PhysicalInjury        `json:"physicalInjury,omitempty"`
	PsychologicalInjuries *PsychologicalInjuries `json:"psychologicalInjuries,omitempty"`
	Treatments            *Treatments            `json:"treatments,omitempty"`
	LifestyleImpact       *LifestyleImpact       `json:"lifestyleImpact,omitempty"`
	FamilyHistory         *FamilyHistory         `json:"familyHistory,omitempty"`
	ExpertDetails         *ExpertDetails         `json:"expertDetails,omitempty"`
}

// ClaimantName returns the claimant's full name, or "" when absent.
func (c *Case) ClaimantName() string {
	if c == nil || c.ClaimantDetails == nil {
		return ""
	}
	return c.ClaimantDetails.FullName
}

// ParseCase decodes a Case from its JSON representation.
func ParseCase(data []byte) (*Case, error) {
	var c Case
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, NewRenderError("ParseCase", err)
	}
	return &c, nil
}

// ClaimantDetails identifies the claimant and the examination context.
type ClaimantDetails struct {
	FullName           string `json:"fullName"`
	DateOfBirth        string `json:"dateOfBirth"` // ISO date, e.g. "1985-07-14"
	Address            string `json:"address"`
	Gender             string `json:"gender"`
	IdentificationType string `json:"identificationType"`
	AccompaniedBy      string `json:"accompaniedBy"`
	DateOfExamination  string `json:"dateOfExamination"`
	PlaceOfExamination string `json:"placeOfExamination"`
	TimeSpent          string `json:"timeSpent"`
	InstructingParty   string `json:"instructingParty"`
	Solicitor          string `json:"solicitor"`
	Reference          string `json:"reference"`
}

// Witness is a third party present at the accident.
type Witness struct {
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Statement string `json:"statement"`
}

// AccidentDetails describes the index accident.
type AccidentDetails struct {
	Date            string `json:"date"`
	Time            string `json:"time"`
	Location        string `json:"location"`
	Weather         string `json:"weather"`
	AccidentType    string `json:"accidentType"`
	Description     string `json:"description"`
	VehicleType     string `json:"vehicleType"`
	VehiclePosition string `json:"vehiclePosition"` // driver, front passenger, rear passenger
	VehicleMovement string `json:"vehicleMovement"` // stationary, moving slowly, ...
	ImpactLocation  string `json:"impactLocation"`  // rear, front, side, ...
	DamageSeverity  string `json:"damageSeverity"`

	SeatbeltWorn   bool `json:"seatbeltWorn"`
	HeadrestFitted bool `json:"headrestFitted"`
	AirbagDeployed bool `json:"airbagDeployed"`

	PoliceAttended     bool   `json:"policeAttended"`
	PoliceReportNumber string `json:"policeReportNumber"`

	Witnesses []Witness `json:"witnesses,omitempty"`
}

// Injury is one physical injury sustained in the accident.
type Injury struct {
	Type            string `json:"type"`
	Onset           string `json:"onset"` // Same Day, Next Day, ...
	InitialSeverity string `json:"initialSeverity"`
	CurrentSeverity string `json:"currentSeverity"` // Mild, Moderate, Severe, Resolved
	ResolutionDays  int    `json:"resolutionDays,omitempty"`

	// SpecialistReferral marks the injury as requiring assessment outside
	// this examiner's expertise; prognosis defers to the specialist.
	SpecialistReferral bool `json:"specialistReferral,omitempty"`
}

// Resolved reports whether the injury has resolved by the examination date.
func (i Injury) Resolved() bool {
	return strings.EqualFold(i.CurrentSeverity, "Resolved")
}

// PhysicalInjury holds the injury list and examiner's free-text summary.
type PhysicalInjury struct {
	Injuries []Injury `json:"injuries,omitempty"`
	Summary  string   `json:"summary"`
	Notes    string   `json:"notes"`
}

// Diagnosis is one formal psychological diagnosis.
type Diagnosis struct {
	Diagnosis string `json:"diagnosis"`
	Date      string `json:"date"`
	Provider  string `json:"provider"`
}

// PsychologicalInjuries describes psychological sequelae of the accident.
type PsychologicalInjuries struct {
	Symptoms  []string    `json:"symptoms,omitempty"`
	Diagnoses []Diagnosis `json:"diagnoses,omitempty"`

	TravelAnxietySymptoms   []string `json:"travelAnxietySymptoms,omitempty"`
	TravelAnxietyOnset      string   `json:"travelAnxietyOnset"`
	TravelAnxietySeverity   string   `json:"travelAnxietySeverity"`
	TravelAnxietyResolution string   `json:"travelAnxietyResolution"`
}

// Treatments records treatment received since the accident.
type Treatments struct {
	TreatedAtScene    bool   `json:"treatedAtScene"`
	SceneTreatment    string `json:"sceneTreatment"`
	AttendedHospital  bool   `json:"attendedHospital"`
	HospitalName      string `json:"hospitalName"`
	HospitalTreatment string `json:"hospitalTreatment"`
	VisitedGP         bool   `json:"visitedGP"`
	GPVisitCount      int    `json:"gpVisitCount,omitempty"`
	TakingMedication  bool   `json:"takingMedication"`
	Medication        string `json:"medication"`

	PhysiotherapySessions int `json:"physiotherapySessions,omitempty"`

	// PhysiotherapyPreferred is the claimant's explicit treatment
	// preference; the recommendation rules key off this flag.
	PhysiotherapyPreferred bool `json:"physiotherapyPreferred,omitempty"`

	Summary string `json:"summary"`
}

// ImpactDetail pairs an affected/not-affected flag with its detail text.
type ImpactDetail struct {
	Affected bool   `json:"affected"`
	Details  string `json:"details"`
}

// LifestyleImpact describes the accident's effect on daily living.
type LifestyleImpact struct {
	Occupation    string `json:"occupation"`
	WorkStatus    string `json:"workStatus"`
	DaysOffWork   int    `json:"daysOffWork,omitempty"`
	WorkedThrough bool   `json:"workedThrough,omitempty"`

	Domestic ImpactDetail `json:"domestic"`
	Leisure  ImpactDetail `json:"leisure"`
	Social   ImpactDetail `json:"social"`
	Sleep    ImpactDetail `json:"sleep"`

	Summary string `json:"summary"`
}

// FamilyHistory records prior accidents and pre-existing conditions.
type FamilyHistory struct {
	PreviousAccident        bool   `json:"previousAccident"`
	PreviousAccidentDetails string `json:"previousAccidentDetails"`
	PreExistingCondition    bool   `json:"preExistingCondition"`
	PreExistingDetails      string `json:"preExistingDetails"`

	ExceptionalCircumstances bool   `json:"exceptionalCircumstances"`
	ExceptionalDetails       string `json:"exceptionalDetails"`

	Summary string `json:"summary"`
}

// ExpertDetails identifies the examining expert.
type ExpertDetails struct {
	Name              string `json:"name"`
	Credentials       string `json:"credentials"`
	Specialty         string `json:"specialty"`
	LicenseNumber     string `json:"licenseNumber"`
	LicensingBody     string `json:"licensingBody"`
	YearsOfExperience int    `json:"yearsOfExperience,omitempty"`
	Email             string `json:"email"`
	Phone             string `json:"phone"`
	SignatureDate     string `json:"signatureDate"`
}
