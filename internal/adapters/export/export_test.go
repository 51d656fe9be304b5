package export

import (
	"context"
	"net/smtp"
	"testing"

	"github.com/jordan-wright/email"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/lunchcal/internal/core/domain"
	"go.trai.ch/lunchcal/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func testMenu() domain.WeekMenu {
	calories := 650
	protein := 20.0
	return domain.WeekMenu{
		"monday": {
			Name: "Spaghetti and Meatballs",
			Day:  "monday",
			Date: "August 24, 2026",
			Nutrition: &domain.NutritionalInfo{
				Calories:  &calories,
				ProteinG:  &protein,
				Allergens: []string{"gluten", "dairy"},
			},
		},
		"tuesday": {Name: "Pizza", Day: "tuesday", Date: "August 25, 2026"},
	}
}

func TestPDFExporter_CreateAndUpload(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockObjectStore(ctrl)

	var uploaded []byte
	store.EXPECT().
		Upload(gomock.Any(), "menu_pdfs/2026-W35/menu.pdf", gomock.Any(), "application/pdf").
		DoAndReturn(func(_ context.Context, _ string, data []byte, _ string) (string, error) {
			uploaded = data
			return "https://cdn.example.com/menu_pdfs/2026-W35/menu.pdf", nil
		})

	url, err := NewPDFExporter(store).CreateAndUpload(context.Background(), testMenu(), "2026-W35")
	require.NoError(t, err)

	assert.Equal(t, "https://cdn.example.com/menu_pdfs/2026-W35/menu.pdf", url)
	require.NotEmpty(t, uploaded)
	assert.Equal(t, "%PDF", string(uploaded[:4]))
}

func TestPDFExporter_EmptyMenu(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockObjectStore(ctrl)

	_, err := NewPDFExporter(store).CreateAndUpload(context.Background(), domain.WeekMenu{}, "2026-W35")
	assert.ErrorIs(t, err, domain.ErrEmptyMenu)
}

func TestPDFExporter_UploadFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockObjectStore(ctrl)
	store.EXPECT().
		Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return("", assert.AnError)

	_, err := NewPDFExporter(store).CreateAndUpload(context.Background(), testMenu(), "2026-W35")
	assert.ErrorContains(t, err, domain.ErrUploadFailed.Error())
}

func TestNutritionLine(t *testing.T) {
	calories := 650
	protein := 20.5

	tests := []struct {
		name string
		n    *domain.NutritionalInfo
		want string
	}{
		{name: "nil", n: nil, want: ""},
		{name: "empty", n: &domain.NutritionalInfo{}, want: ""},
		{
			name: "full",
			n: &domain.NutritionalInfo{
				Calories:  &calories,
				ProteinG:  &protein,
				Allergens: []string{"dairy", "soy"},
			},
			want: "650 cal | 20.5g protein | contains dairy, soy",
		},
		{
			name: "allergens only",
			n:    &domain.NutritionalInfo{Allergens: []string{"peanuts"}},
			want: "contains peanuts",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, nutritionLine(tt.n))
		})
	}
}

func TestMailer_SendMenu(t *testing.T) {
	var sent *email.Email
	var sentAddr string

	m := NewMailer("smtp.gmail.com", 587, "lunch@example.com", "hunter2")
	m.send = func(e *email.Email, addr string, _ smtp.Auth) error {
		sent = e
		sentAddr = addr
		return nil
	}

	err := m.SendMenu("parent@example.com",
		"https://cdn.example.com/menu_calendars/2026-W35/calendar.png",
		"https://cdn.example.com/menu_pdfs/2026-W35/menu.pdf",
		"2026-W35")
	require.NoError(t, err)

	assert.Equal(t, "smtp.gmail.com:587", sentAddr)
	require.NotNil(t, sent)
	assert.Equal(t, "lunch@example.com", sent.From)
	assert.Equal(t, []string{"parent@example.com"}, sent.To)
	assert.Equal(t, "School Lunch Menu - Week 2026-W35", sent.Subject)
	assert.Contains(t, string(sent.HTML), "calendar.png")
	assert.Contains(t, string(sent.HTML), "menu.pdf")
}

func TestMailer_SendMenuWithoutPDF(t *testing.T) {
	m := NewMailer("smtp.gmail.com", 587, "lunch@example.com", "hunter2")
	m.send = func(e *email.Email, _ string, _ smtp.Auth) error {
		assert.NotContains(t, string(e.HTML), "Download the PDF")
		return nil
	}

	err := m.SendMenu("parent@example.com", "https://cdn.example.com/cal.png", "", "2026-W35")
	require.NoError(t, err)
}

func TestMailer_MissingRecipient(t *testing.T) {
	m := NewMailer("smtp.gmail.com", 587, "lunch@example.com", "hunter2")

	err := m.SendMenu("", "https://cdn.example.com/cal.png", "", "2026-W35")
	assert.ErrorIs(t, err, domain.ErrMissingRecipient)

	err = m.SendMenu("parent@example.com", "", "", "2026-W35")
	assert.ErrorIs(t, err, domain.ErrMissingRecipient)
}

func TestMailer_SendFailure(t *testing.T) {
	m := NewMailer("smtp.gmail.com", 587, "lunch@example.com", "hunter2")
	m.send = func(_ *email.Email, _ string, _ smtp.Auth) error {
		return assert.AnError
	}

	err := m.SendMenu("parent@example.com", "https://cdn.example.com/cal.png", "", "2026-W35")
	assert.ErrorContains(t, err, domain.ErrEmailSendFailed.Error())
}
