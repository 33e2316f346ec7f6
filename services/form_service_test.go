package services

import (
	"context"
	"strings"
	"testing"

	"github.com/GPSingh476/formflow-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateFormStartsAsDraftWithSlug(t *testing.T) {
	db := newTestDB(t)
	owner := createTestUser(t, db, "owner@test.local")
	svc := NewFormService()

	form, err := svc.CreateForm(context.Background(), owner.ID, CreateFormInput{
		Title:       "Musteri Memnuniyet Anketi",
		Description: "Kısa bir anket",
	})
	require.NoError(t, err)

	assert.Equal(t, models.FormStatusDraft, form.Status)
	assert.Nil(t, form.PublishedAt)
	assert.True(t, strings.HasPrefix(form.Slug, "musteri-memnuniyet-anketi-"), "slug: %s", form.Slug)

	// Aynı başlık ikinci kez kullanılabilir: rastgele ek slug'ı ayrıştırır.
	second, err := svc.CreateForm(context.Background(), owner.ID, CreateFormInput{Title: "Musteri Memnuniyet Anketi"})
	require.NoError(t, err)
	assert.NotEqual(t, form.Slug, second.Slug)
}

func TestCreateFormValidatesInput(t *testing.T) {
	db := newTestDB(t)
	owner := createTestUser(t, db, "owner@test.local")
	svc := NewFormService()
	ctx := context.Background()

	_, err := svc.CreateForm(ctx, owner.ID, CreateFormInput{Title: ""})
	assert.ErrorIs(t, err, ErrFormTitleRequired)

	_, err = svc.CreateForm(ctx, owner.ID, CreateFormInput{Title: strings.Repeat("a", maxTitleLength+1)})
	assert.ErrorIs(t, err, ErrFormInvalidInput)

	_, err = svc.CreateForm(ctx, owner.ID, CreateFormInput{
		Title:       "gecerli",
		Description: strings.Repeat("a", maxDescriptionLength+1),
	})
	assert.ErrorIs(t, err, ErrFormInvalidInput)

	_, err = svc.CreateForm(ctx, 0, CreateFormInput{Title: "gecerli"})
	assert.ErrorIs(t, err, ErrFormInvalidInput)
}

func TestListFormsReturnsOnlyOwnForms(t *testing.T) {
	db := newTestDB(t)
	owner := createTestUser(t, db, "owner@test.local")
	other := createTestUser(t, db, "other@test.local")
	mine := createTestForm(t, db, owner.ID, "benim")
	createTestForm(t, db, other.ID, "baskasinin")
	svc := NewFormService()

	forms, err := svc.ListForms(context.Background(), owner.ID)
	require.NoError(t, err)
	require.Len(t, forms, 1)
	assert.Equal(t, mine.ID, forms[0].ID)
}

func TestGetFormOwnershipGuard(t *testing.T) {
	db := newTestDB(t)
	owner := createTestUser(t, db, "owner@test.local")
	stranger := createTestUser(t, db, "stranger@test.local")
	form := createTestForm(t, db, owner.ID, "anket")
	svc := NewFormService()
	ctx := context.Background()

	got, err := svc.GetForm(ctx, form.ID, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, form.ID, got.ID)

	// Sahip olmayan için 403, olmayan form için 404 ayrımı korunur.
	_, err = svc.GetForm(ctx, form.ID, stranger.ID)
	assert.ErrorIs(t, err, ErrFormForbidden)

	_, err = svc.GetForm(ctx, 424242, owner.ID)
	assert.ErrorIs(t, err, ErrFormNotFound)
}

func TestPublishFormSetsStatusAndTimestamp(t *testing.T) {
	db := newTestDB(t)
	owner := createTestUser(t, db, "owner@test.local")
	form := createTestForm(t, db, owner.ID, "anket")
	svc := NewFormService()

	published, err := svc.PublishForm(context.Background(), form.ID, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, models.FormStatusPublished, published.Status)
	require.NotNil(t, published.PublishedAt)

	// İkinci çağrı idempotenttir, hata üretmez.
	again, err := svc.PublishForm(context.Background(), form.ID, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, models.FormStatusPublished, again.Status)
}

func TestPublishFormRequiresOwnership(t *testing.T) {
	db := newTestDB(t)
	owner := createTestUser(t, db, "owner@test.local")
	stranger := createTestUser(t, db, "stranger@test.local")
	form := createTestForm(t, db, owner.ID, "anket")
	svc := NewFormService()

	_, err := svc.PublishForm(context.Background(), form.ID, stranger.ID)
	assert.ErrorIs(t, err, ErrFormForbidden)

	var reloaded models.Form
	require.NoError(t, db.First(&reloaded, form.ID).Error)
	assert.Equal(t, models.FormStatusDraft, reloaded.Status)
}

func TestDeleteFormCascadesChildren(t *testing.T) {
	db := newTestDB(t)
	owner := createTestUser(t, db, "owner@test.local")
	form := createTestForm(t, db, owner.ID, "anket")
	field := createTestField(t, db, form.ID, "metin", 0, false)
	publishTestForm(t, db, form)

	other := createTestForm(t, db, owner.ID, "kalan")
	otherField := createTestField(t, db, other.ID, "metin", 0, false)
	publishTestForm(t, db, other)

	_, err := NewPublicService().SubmitBySlug(context.Background(), form.Slug, map[string]any{
		answerKey(field.ID): "x",
	})
	require.NoError(t, err)
	_, err = NewPublicService().SubmitBySlug(context.Background(), other.Slug, map[string]any{
		answerKey(otherField.ID): "y",
	})
	require.NoError(t, err)

	svc := NewFormService()
	require.NoError(t, svc.DeleteForm(context.Background(), form.ID, owner.ID))

	var formCount, fieldCount, responseCount, answerCount int64
	require.NoError(t, db.Model(&models.Form{}).Count(&formCount).Error)
	require.NoError(t, db.Model(&models.FormField{}).Count(&fieldCount).Error)
	require.NoError(t, db.Model(&models.FormResponse{}).Count(&responseCount).Error)
	require.NoError(t, db.Model(&models.FormAnswer{}).Count(&answerCount).Error)

	// Sadece silinen formun alt kayıtları gider, diğer form dokunulmaz kalır.
	assert.EqualValues(t, 1, formCount)
	assert.EqualValues(t, 1, fieldCount)
	assert.EqualValues(t, 1, responseCount)
	assert.EqualValues(t, 1, answerCount)

	err = svc.DeleteForm(context.Background(), form.ID, owner.ID)
	assert.ErrorIs(t, err, ErrFormNotFound)
}

func TestDeleteFormRequiresOwnership(t *testing.T) {
	db := newTestDB(t)
	owner := createTestUser(t, db, "owner@test.local")
	stranger := createTestUser(t, db, "stranger@test.local")
	form := createTestForm(t, db, owner.ID, "anket")
	svc := NewFormService()

	err := svc.DeleteForm(context.Background(), form.ID, stranger.ID)
	assert.ErrorIs(t, err, ErrFormForbidden)

	var count int64
	require.NoError(t, db.Model(&models.Form{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}
