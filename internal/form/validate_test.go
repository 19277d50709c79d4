package form

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func yes() *bool { b := true; return &b }
func no() *bool { b := false; return &b }

func attending() Submission {
	sub := Defaults()
	sub.GuestFirstName = "Zhen"
	sub.GuestLastName = "Jansen"
	sub.GuestPresent = yes()
	sub.GuestEmail = "zhen@example.com"
	sub.GuestDietVega = true
	return sub
}

func emailsTaken(emails ...string) EmailLookup {
	return func(_ context.Context, email string) (bool, error) {
		for _, e := range emails {
			if e == email {
				return true, nil
			}
		}
		return false, nil
	}
}

func validationErrors(t *testing.T, err error) Errors {
	t.Helper()
	var errs Errors
	require.True(t, errors.As(err, &errs), "expected validation errors, got %v", err)
	return errs
}

func TestValidate_ValidAttendingGuest(t *testing.T) {
	v := NewValidator(emailsTaken())
	sub := attending()
	sub.GuestFirstName = "  Zhen "
	sub.GuestEmail = " Zhen@Example.COM "

	f, err := v.Validate(context.Background(), sub, false, nil)
	require.NoError(t, err)

	assert.Equal(t, "Zhen", f.GuestFirstName)
	require.NotNil(t, f.GuestEmail)
	assert.Equal(t, "zhen@example.com", *f.GuestEmail)
	assert.True(t, f.GuestPresent)
	assert.False(t, f.WithPartner)
}

func TestValidate_RequiredFields(t *testing.T) {
	v := NewValidator(nil)

	_, err := v.Validate(context.Background(), Submission{GuestFirstName: "   "}, false, nil)
	errs := validationErrors(t, err)

	assert.Equal(t, []string{MsgRequired}, errs.Messages("guest_first_name"))
	assert.Equal(t, []string{MsgRequired}, errs.Messages("guest_last_name"))
	assert.Equal(t, []string{MsgRequired}, errs.Messages("guest_present"))
	assert.False(t, errs.Has("guest_email"), "e-mail is optional while attendance is unanswered")
	assert.Equal(t, "guest_first_name", errs[0].Field, "errors follow form order")
}

func TestValidate_Email(t *testing.T) {
	v := NewValidator(emailsTaken("taken@example.com"))
	ctx := context.Background()

	t.Run("RequiredWhenAttending", func(t *testing.T) {
		sub := attending()
		sub.GuestEmail = "  "
		_, err := v.Validate(ctx, sub, false, nil)
		assert.Equal(t, []string{MsgRequired}, validationErrors(t, err).Messages("guest_email"))
	})

	t.Run("OptionalWhenNotAttending", func(t *testing.T) {
		sub := attending()
		sub.GuestPresent = no()
		sub.GuestEmail = ""
		f, err := v.Validate(ctx, sub, false, nil)
		require.NoError(t, err)
		assert.Nil(t, f.GuestEmail)
	})

	t.Run("Format", func(t *testing.T) {
		sub := attending()
		sub.GuestEmail = "not-an-address"
		_, err := v.Validate(ctx, sub, false, nil)
		assert.Equal(t, []string{MsgInvalidEmail}, validationErrors(t, err).Messages("guest_email"))
	})

	t.Run("Length", func(t *testing.T) {
		sub := attending()
		sub.GuestEmail = strings.Repeat("a", 250) + "@example.com"
		_, err := v.Validate(ctx, sub, false, nil)
		assert.Equal(t, []string{"Dit veld mag niet langer zijn dan 254 tekens."}, validationErrors(t, err).Messages("guest_email"))
	})

	t.Run("TakenOnCreate", func(t *testing.T) {
		sub := attending()
		sub.GuestEmail = "Taken@example.com"
		_, err := v.Validate(ctx, sub, false, nil)
		assert.Equal(t, []string{MsgEmailTaken}, validationErrors(t, err).Messages("guest_email"))
	})

	t.Run("UnchangedOnEdit", func(t *testing.T) {
		existing := "taken@example.com"
		sub := attending()
		sub.GuestEmail = "taken@example.com"
		_, err := v.Validate(ctx, sub, false, &existing)
		require.NoError(t, err)
	})

	t.Run("ChangedToTakenOnEdit", func(t *testing.T) {
		existing := "mine@example.com"
		sub := attending()
		sub.GuestEmail = "taken@example.com"
		_, err := v.Validate(ctx, sub, false, &existing)
		assert.Equal(t, []string{MsgEmailTaken}, validationErrors(t, err).Messages("guest_email"))
	})

	t.Run("LookupFailure", func(t *testing.T) {
		boom := errors.New("disk I/O error")
		failing := NewValidator(func(context.Context, string) (bool, error) { return false, boom })
		_, err := failing.Validate(ctx, attending(), false, nil)
		require.ErrorIs(t, err, boom)
		var errs Errors
		assert.False(t, errors.As(err, &errs))
	})
}

func TestValidate_ProgramItems(t *testing.T) {
	v := NewValidator(nil)
	sub := attending()
	sub.GuestPresentCeremony = false
	sub.GuestPresentReception = false
	sub.GuestPresentDinner = false

	_, err := v.Validate(context.Background(), sub, false, nil)
	assert.Equal(t, []string{MsgNoProgramItem}, validationErrors(t, err).Messages("guest_present_dinner"))

	sub.GuestPresent = no()
	_, err = v.Validate(context.Background(), sub, false, nil)
	require.NoError(t, err, "absent guests need no program item")
}

func TestValidate_GuestDiet(t *testing.T) {
	v := NewValidator(nil)
	sub := attending()
	sub.GuestDietVega = false

	_, err := v.Validate(context.Background(), sub, false, nil)
	assert.Equal(t, []string{MsgNoDiet}, validationErrors(t, err).Messages("guest_diet_vega"))

	sub.GuestPresentDinner = false
	_, err = v.Validate(context.Background(), sub, false, nil)
	require.NoError(t, err)
}

func TestValidate_Partner(t *testing.T) {
	v := NewValidator(nil)
	ctx := context.Background()

	t.Run("RequiredNamesAndDiet", func(t *testing.T) {
		_, err := v.Validate(ctx, attending(), true, nil)
		errs := validationErrors(t, err)
		assert.Equal(t, []string{MsgRequired}, errs.Messages("partner_first_name"))
		assert.Equal(t, []string{MsgRequired}, errs.Messages("partner_last_name"))
		assert.Equal(t, []string{MsgNoDiet}, errs.Messages("partner_diet_vega"))
	})

	t.Run("Valid", func(t *testing.T) {
		sub := attending()
		sub.PartnerFirstName = " Ties Jan "
		sub.PartnerLastName = "de Vries"
		sub.PartnerDietFish = true

		f, err := v.Validate(ctx, sub, true, nil)
		require.NoError(t, err)
		assert.True(t, f.WithPartner)
		assert.Equal(t, "Ties Jan", f.PartnerFirstName)
		require.NotNil(t, f.PartnerDietFish)
		assert.True(t, *f.PartnerDietFish)
		require.NotNil(t, f.PartnerDietMeat)
		assert.False(t, *f.PartnerDietMeat)
	})

	t.Run("NamesOptionalWhenNotAttending", func(t *testing.T) {
		sub := attending()
		sub.GuestPresent = no()
		sub.GuestPresentDinner = false
		_, err := v.Validate(ctx, sub, true, nil)
		require.NoError(t, err)
	})

	t.Run("IgnoredWithoutPartner", func(t *testing.T) {
		sub := attending()
		sub.PartnerFirstName = strings.Repeat("x", 80)
		sub.PartnerLastName = "Ignored"
		sub.PartnerDietMeat = true

		f, err := v.Validate(ctx, sub, false, nil)
		require.NoError(t, err)
		assert.False(t, f.WithPartner)
		assert.Empty(t, f.PartnerFirstName)
		assert.Empty(t, f.PartnerLastName)
		assert.Nil(t, f.PartnerDietMeat)
		assert.Nil(t, f.PartnerDietFish)
		assert.Nil(t, f.PartnerDietVega)
	})
}

func TestValidate_Remarks(t *testing.T) {
	v := NewValidator(nil)
	sub := attending()
	sub.Remarks = strings.Repeat("é", 251)

	_, err := v.Validate(context.Background(), sub, false, nil)
	assert.Equal(t, []string{"Dit veld mag niet langer zijn dan 250 tekens."}, validationErrors(t, err).Messages("remarks"))

	sub.Remarks = strings.Repeat("é", 250)
	_, err = v.Validate(context.Background(), sub, false, nil)
	require.NoError(t, err)
}
