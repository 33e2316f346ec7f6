package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/GPSingh476/formflow-backend/models"
	"github.com/GPSingh476/formflow-backend/pkg/queryparams"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func submitTestResponses(t *testing.T, svc IPublicService, slug string, fieldID uint, n int) []uint {
	t.Helper()
	ids := make([]uint, 0, n)
	for i := 0; i < n; i++ {
		id, err := svc.SubmitBySlug(context.Background(), slug, map[string]any{
			answerKey(fieldID): fmt.Sprintf("cevap-%d", i+1),
		})
		require.NoError(t, err)
		ids = append(ids, id)
	}
	return ids
}

func TestListResponsesPaginatesNewestFirst(t *testing.T) {
	db := newTestDB(t)
	owner := createTestUser(t, db, "owner@test.local")
	form := createTestForm(t, db, owner.ID, "anket")
	field := createTestField(t, db, form.ID, "metin", 0, false)
	publishTestForm(t, db, form)

	ids := submitTestResponses(t, NewPublicService(), form.Slug, field.ID, 25)
	svc := NewResponseService()

	result, err := svc.ListResponses(context.Background(), form.ID, owner.ID, queryparams.ListParams{Page: 2, PerPage: 10})
	require.NoError(t, err)

	assert.Equal(t, 2, result.Meta.Page)
	assert.Equal(t, 10, result.Meta.PerPage)
	assert.EqualValues(t, 25, result.Meta.TotalItems)
	assert.Equal(t, 3, result.Meta.TotalPages)

	items, ok := result.Data.([]ResponseSummary)
	require.True(t, ok)
	require.Len(t, items, 10)

	// En yenisi önce: 2. sayfa, 25 kayıttan 15..6 numaralıları içerir.
	for i, item := range items {
		assert.Equal(t, ids[14-i], item.ID)
		assert.Equal(t, form.ID, item.FormID)
		assert.EqualValues(t, 1, item.AnswersCount)
	}
}

func TestListResponsesClampsParams(t *testing.T) {
	db := newTestDB(t)
	owner := createTestUser(t, db, "owner@test.local")
	form := createTestForm(t, db, owner.ID, "anket")
	field := createTestField(t, db, form.ID, "metin", 0, false)
	publishTestForm(t, db, form)
	submitTestResponses(t, NewPublicService(), form.Slug, field.ID, 3)

	svc := NewResponseService()
	result, err := svc.ListResponses(context.Background(), form.ID, owner.ID, queryparams.ListParams{Page: 0, PerPage: 1000})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Meta.Page)
	assert.Equal(t, 100, result.Meta.PerPage)
	items, ok := result.Data.([]ResponseSummary)
	require.True(t, ok)
	assert.Len(t, items, 3)
}

func TestListResponsesRequiresOwnership(t *testing.T) {
	db := newTestDB(t)
	owner := createTestUser(t, db, "owner@test.local")
	stranger := createTestUser(t, db, "stranger@test.local")
	form := createTestForm(t, db, owner.ID, "anket")
	svc := NewResponseService()
	ctx := context.Background()

	_, err := svc.ListResponses(ctx, form.ID, stranger.ID, queryparams.DefaultListParams("created_at"))
	assert.ErrorIs(t, err, ErrFormForbidden)

	_, err = svc.ListResponses(ctx, 424242, owner.ID, queryparams.DefaultListParams("created_at"))
	assert.ErrorIs(t, err, ErrFormNotFound)
}

func TestGetResponseDetailOrdersAnswersByFieldOrder(t *testing.T) {
	db := newTestDB(t)
	owner := createTestUser(t, db, "owner@test.local")
	form := createTestForm(t, db, owner.ID, "anket")
	second := createTestField(t, db, form.ID, "ikinci", 1, false)
	first := createTestField(t, db, form.ID, "birinci", 0, false)
	publishTestForm(t, db, form)

	responseID, err := NewPublicService().SubmitBySlug(context.Background(), form.Slug, map[string]any{
		answerKey(second.ID): "b",
		answerKey(first.ID):  "a",
	})
	require.NoError(t, err)

	svc := NewResponseService()
	detail, err := svc.GetResponseDetail(context.Background(), form.ID, responseID, owner.ID)
	require.NoError(t, err)
	require.Len(t, detail.Answers, 2)

	assert.Equal(t, "birinci", detail.Answers[0].Field.Label)
	assert.Equal(t, "a", *detail.Answers[0].Value)
	assert.Equal(t, "ikinci", detail.Answers[1].Field.Label)
	assert.Equal(t, "b", *detail.Answers[1].Value)
}

func TestGetResponseDetailKeepsOrphanedAnswersLast(t *testing.T) {
	db := newTestDB(t)
	owner := createTestUser(t, db, "owner@test.local")
	form := createTestForm(t, db, owner.ID, "anket")
	kept := createTestField(t, db, form.ID, "kalan", 1, false)
	doomed := createTestField(t, db, form.ID, "silinecek", 0, false)
	publishTestForm(t, db, form)

	responseID, err := NewPublicService().SubmitBySlug(context.Background(), form.Slug, map[string]any{
		answerKey(kept.ID):   "kaldi",
		answerKey(doomed.ID): "yetim",
	})
	require.NoError(t, err)

	fieldSvc := NewFieldService()
	require.NoError(t, fieldSvc.RemoveField(context.Background(), form.ID, doomed.ID, owner.ID))

	detail, err := NewResponseService().GetResponseDetail(context.Background(), form.ID, responseID, owner.ID)
	require.NoError(t, err)
	require.Len(t, detail.Answers, 2)

	// Alanı silinen cevap listeden düşmez, null alan referansıyla sona gider.
	assert.Equal(t, "kaldi", *detail.Answers[0].Value)
	require.NotNil(t, detail.Answers[0].Field)

	assert.Equal(t, "yetim", *detail.Answers[1].Value)
	assert.Nil(t, detail.Answers[1].Field)
	assert.Nil(t, detail.Answers[1].FieldID)
}

func TestGetResponseDetailScopedToForm(t *testing.T) {
	db := newTestDB(t)
	owner := createTestUser(t, db, "owner@test.local")
	formA := createTestForm(t, db, owner.ID, "anket-a")
	formB := createTestForm(t, db, owner.ID, "anket-b")
	fieldA := createTestField(t, db, formA.ID, "metin", 0, false)
	publishTestForm(t, db, formA)
	publishTestForm(t, db, formB)

	responseID, err := NewPublicService().SubmitBySlug(context.Background(), formA.Slug, map[string]any{
		answerKey(fieldA.ID): "x",
	})
	require.NoError(t, err)

	svc := NewResponseService()
	// Başka formun altında aynı response id bulunamaz.
	_, err = svc.GetResponseDetail(context.Background(), formB.ID, responseID, owner.ID)
	assert.ErrorIs(t, err, ErrResponseNotFound)

	_, err = svc.GetResponseDetail(context.Background(), formA.ID, responseID, owner.ID)
	assert.NoError(t, err)
}

func TestGetResponseDetailRequiresOwnership(t *testing.T) {
	db := newTestDB(t)
	owner := createTestUser(t, db, "owner@test.local")
	stranger := createTestUser(t, db, "stranger@test.local")
	form := createTestForm(t, db, owner.ID, "anket")
	field := createTestField(t, db, form.ID, "metin", 0, false)
	publishTestForm(t, db, form)

	responseID, err := NewPublicService().SubmitBySlug(context.Background(), form.Slug, map[string]any{
		answerKey(field.ID): "x",
	})
	require.NoError(t, err)

	_, err = NewResponseService().GetResponseDetail(context.Background(), form.ID, responseID, stranger.ID)
	assert.ErrorIs(t, err, ErrFormForbidden)

	var count int64
	require.NoError(t, db.Model(&models.FormResponse{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}
