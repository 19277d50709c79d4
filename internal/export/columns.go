package export

import (
	"strconv"
	"time"

	"github.com/gdg-garage/wedding-rsvp/internal/models"
)

const (
	Yes = "Ja"
	No  = "Nee"

	TimestampLayout = "2006-01-02 15:04:05"
)

// Column maps one registration attribute to its header in the export.
type Column struct {
	Key    string
	Header string
	Value  func(r *models.Registration) any
}

// Columns lists the exported attributes in export order.
var Columns = []Column{
	{"rsvp_code", "Code", func(r *models.Registration) any { return r.RSVPCode }},
	{"guest_first_name", "Voornaam", func(r *models.Registration) any { return r.GuestFirstName }},
	{"guest_last_name", "Achternaam", func(r *models.Registration) any { return r.GuestLastName }},
	{"guest_present", "Aanwezig", func(r *models.Registration) any { return r.GuestPresent }},
	{"guest_present_ceremony", "Aanwezig: ceremonie", func(r *models.Registration) any { return r.GuestPresentCeremony }},
	{"guest_present_reception", "Aanwezig: receptie", func(r *models.Registration) any { return r.GuestPresentReception }},
	{"guest_present_dinner", "Aanwezig: diner", func(r *models.Registration) any { return r.GuestPresentDinner }},
	{"guest_email", "E-mail", func(r *models.Registration) any { return r.GuestEmail }},
	{"guest_diet_meat", "Dieetwensen: Vlees", func(r *models.Registration) any { return r.GuestDietMeat }},
	{"guest_diet_fish", "Dieetwensen: Vis", func(r *models.Registration) any { return r.GuestDietFish }},
	{"guest_diet_vega", "Dieetwensen: Vegetarisch", func(r *models.Registration) any { return r.GuestDietVega }},
	{"with_partner", "Met partner", func(r *models.Registration) any { return r.WithPartner }},
	{"partner_first_name", "Partner voornaam", func(r *models.Registration) any { return r.PartnerFirstName }},
	{"partner_last_name", "Partner achternaam", func(r *models.Registration) any { return r.PartnerLastName }},
	{"partner_diet_meat", "Partner dieetwensen: Vlees", func(r *models.Registration) any { return r.PartnerDietMeat }},
	{"partner_diet_fish", "Partner dieetwensen: Vis", func(r *models.Registration) any { return r.PartnerDietFish }},
	{"partner_diet_vega", "Partner dieetwensen: Vegetarisch", func(r *models.Registration) any { return r.PartnerDietVega }},
	{"remarks", "Opmerkingen", func(r *models.Registration) any { return r.Remarks }},
	{"created_at", "Registratiedatum", func(r *models.Registration) any { return r.CreatedAt }},
	{"updated_at", "Laatst aangepast", func(r *models.Registration) any { return r.UpdatedAt }},
}

// Format renders a column value: booleans as Ja/Nee, absent values empty.
func Format(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case *string:
		if v == nil {
			return ""
		}
		return *v
	case bool:
		if v {
			return Yes
		}
		return No
	case *bool:
		if v == nil {
			return ""
		}
		return Format(*v)
	case time.Time:
		if v.IsZero() {
			return ""
		}
		return v.Local().Format(TimestampLayout)
	case int:
		return strconv.Itoa(v)
	default:
		return ""
	}
}

// Row renders every column of r.
func Row(r *models.Registration) []string {
	row := make([]string, len(Columns))
	for i, col := range Columns {
		row[i] = Format(col.Value(r))
	}
	return row
}

func Header() []string {
	header := make([]string, len(Columns))
	for i, col := range Columns {
		header[i] = col.Header
	}
	return header
}
