package constant

import "slices"

const (
	CourtHighCourt           = "High Court"
	CourtDistAndSessions     = "Dist & Sessions Court"
	HighCourtSeat            = "Ernakulam"
	DistSessionsCivil        = "Civil"
	DistSessionsCriminal     = "Criminal"
	DefaultResearchDomain    = "indiankanoon.org"
	PartyPlaceholderA        = "PARTY A"
	PartyPlaceholderB        = "PARTY B"
	StyleReferenceParagraphs = 15
)

// Courts lists the petition types offered per court, in display order.
var Courts = []CourtOption{
	{Name: CourtHighCourt, PetitionTypes: []string{"Writ Petition (Civil)", "Writ Petition (Crl)", "Bail App", "Crl.MC", "Mat.Appeal", "RFA", "RSA"}},
	{Name: "Family Court", PetitionTypes: []string{"OP (Divorce)", "MC (Maintenance)", "GOP (Guardianship)", "OP (Restitution)", "IA (Interim)"}},
	{Name: "Munsiff Court", PetitionTypes: []string{"OS (Original Suit)", "EP (Execution Petition)", "RCP (Rent Control)", "CMA (Misc Appeal)"}},
	{Name: "DVC (Domestic Violence)", PetitionTypes: []string{"DVA (Protection Order)", "Interim Maintenance", "Residence Order"}},
	{Name: "MC (Magistrate)", PetitionTypes: []string{"CMP (Misc Petition)", "ST (Summary Trial)", "CC (Calendar Case)", "Bail Application"}},
	{Name: "MVOP (Motor Accident)", PetitionTypes: []string{"OP (MV) Claim", "Ex-parte Set Aside", "Review Petition"}},
}

// DistSessionsCaseTypes are grouped by category instead of by court.
var DistSessionsCaseTypes = map[string][]string{
	DistSessionsCivil: {
		"OS - Original Suit",
		"OP - Original Petition (Divorce / Family)",
		"EA - Execution Application / Petition",
		"MACT - Motor Accident Claim",
		"CMA - Civil Misc. Appeal",
		"Property/Title Dispute",
		"Contract Dispute",
		"Commercial/Company Suit",
	},
	DistSessionsCriminal: {
		"Sessions Case - Serious Offences",
		"CRR - Criminal Revision",
		"CRA - Criminal Appeal",
		"CMP - Criminal Misc. Petition",
		"Bail Application",
		"Contempt (Criminal)",
		"NDPS / Special Criminal Cases",
	},
}

var Districts = []string{
	"Thiruvananthapuram", "Kollam", "Pathanamthitta", "Alappuzha",
	"Kottayam", "Idukki", "Ernakulam", "Thrissur", "Palakkad",
	"Malappuram", "Kozhikode", "Wayanad", "Kannur", "Kasaragod",
}

type CourtOption struct {
	Name          string   `json:"name"`
	PetitionTypes []string `json:"petition_types"`
}

// PetitionTypesFor returns the selectable petition types for a court. The
// category is only consulted for the district and sessions court.
func PetitionTypesFor(court, category string) ([]string, bool) {
	if court == CourtDistAndSessions {
		types, ok := DistSessionsCaseTypes[category]
		return types, ok
	}
	for _, c := range Courts {
		if c.Name == court {
			return c.PetitionTypes, true
		}
	}
	return nil, false
}

// ResolveDistrict pins the High Court to its seat; every other court takes
// the requested district if it is a known one.
func ResolveDistrict(court, district string) (string, bool) {
	if court == CourtHighCourt {
		return HighCourtSeat, true
	}
	return district, slices.Contains(Districts, district)
}

func CourtNames() []string {
	names := make([]string, 0, len(Courts)+1)
	for _, c := range Courts {
		names = append(names, c.Name)
	}
	return append(names, CourtDistAndSessions)
}
