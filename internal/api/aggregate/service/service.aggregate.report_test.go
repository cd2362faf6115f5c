// Package aggsvc - Test luồng generate báo cáo tổng hợp với các collaborator giả.
package aggsvc

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	aggmodels "report_hub/internal/api/aggregate/models"
	catmodels "report_hub/internal/api/category/models"
	reportmodels "report_hub/internal/api/report/models"
	reportsvc "report_hub/internal/api/report/service"
	"report_hub/internal/common"
	"report_hub/internal/llm"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- stubs ---

type stubQuerier struct {
	reports   []reportmodels.Report
	err       error
	gotFilter reportsvc.ReportFilter
	callCount int
}

func (s *stubQuerier) Query(ctx context.Context, f reportsvc.ReportFilter) ([]reportmodels.Report, error) {
	s.callCount++
	s.gotFilter = f
	return s.reports, s.err
}

type stubResolver struct {
	category catmodels.ReportCategory
	err      error
}

func (s *stubResolver) Resolve(ctx context.Context, name string) (catmodels.ReportCategory, error) {
	return s.category, s.err
}

type stubStore struct {
	inserted  *aggmodels.AggregateReport
	callCount int
}

func (s *stubStore) InsertOne(ctx context.Context, data aggmodels.AggregateReport) (aggmodels.AggregateReport, error) {
	s.callCount++
	s.inserted = &data
	return data, nil
}

type stubCompleter struct {
	content   string
	err       error
	gotPrompt string
	callCount int
}

func (s *stubCompleter) Complete(ctx context.Context, req *llm.CompletionRequest) (*llm.CompletionResponse, error) {
	s.callCount++
	s.gotPrompt = req.UserPrompt
	if s.err != nil {
		return nil, s.err
	}
	return &llm.CompletionResponse{Content: s.content}, nil
}

func newTestService(kind Kind, q *stubQuerier, c *stubResolver, st *stubStore, cp *stubCompleter, now time.Time) *AggregateReportService {
	return &AggregateReportService{
		kind:       kind,
		store:      st,
		reports:    q,
		categories: c,
		completer:  cp,
		now:        func() time.Time { return now },
	}
}

// --- tests ---

func TestGenerate_Daily_ThanhCong(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	querier := &stubQuerier{reports: []reportmodels.Report{
		{Reporter: "Matti", Topic: "Leak", Description: "Pipe burst"},
		{Reporter: "Anna", Topic: "Noise", Description: "Loud music"},
	}}
	store := &stubStore{}
	completer := &stubCompleter{content: "Two incidents today."}

	svc := newTestService(KindDaily, querier, &stubResolver{}, store, completer, now)
	got, err := svc.Generate(context.Background(), GenerateParams{Language: "en"})
	if err != nil {
		t.Fatalf("generate thất bại: %v", err)
	}

	if store.callCount != 1 || store.inserted == nil {
		t.Fatal("bản tổng hợp phải được ghi đúng một lần")
	}
	if got.Summary != "Two incidents today." {
		t.Errorf("summary sai: %q", got.Summary)
	}
	if got.ReportCount != 2 {
		t.Errorf("reportCount phải là 2, nhận được: %d", got.ReportCount)
	}
	if got.StartDate != now.Add(-24*time.Hour).UnixMilli() || got.EndDate != now.UnixMilli() {
		t.Errorf("window sai: start=%d end=%d", got.StartDate, got.EndDate)
	}
	if got.Timestamp != now.UnixMilli() {
		t.Errorf("timestamp phải là thời điểm generate, nhận được: %d", got.Timestamp)
	}
	if got.CategoryID != nil {
		t.Errorf("không lọc danh mục thì categoryId phải nil, nhận được: %v", got.CategoryID)
	}
	if !strings.Contains(completer.gotPrompt, "Generate daily report (in language English)") {
		t.Errorf("prompt sai: %q", completer.gotPrompt)
	}
	if !strings.Contains(completer.gotPrompt, "reporter: Matti") {
		t.Errorf("prompt phải chứa báo cáo đã format: %q", completer.gotPrompt)
	}
}

func TestGenerate_KhongCoBaoCao_VanGhiVoiCountKhong(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	store := &stubStore{}
	completer := &stubCompleter{content: "No reports for that day."}

	svc := newTestService(KindDaily, &stubQuerier{}, &stubResolver{}, store, completer, now)
	got, err := svc.Generate(context.Background(), GenerateParams{})
	if err != nil {
		t.Fatalf("cửa sổ rỗng vẫn phải generate được: %v", err)
	}
	if got.ReportCount != 0 {
		t.Errorf("reportCount phải là 0, nhận được: %d", got.ReportCount)
	}
	if store.callCount != 1 {
		t.Error("bản tổng hợp vẫn phải được ghi khi không có báo cáo nguồn")
	}
}

func TestGenerate_SummarizerLoi_KhongGhiGi(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	store := &stubStore{}
	completer := &stubCompleter{err: common.ErrSummarizerUnavailable}

	svc := newTestService(KindDaily, &stubQuerier{}, &stubResolver{}, store, completer, now)
	_, err := svc.Generate(context.Background(), GenerateParams{})
	if !errors.Is(err, common.ErrSummarizerUnavailable) {
		t.Fatalf("lỗi summarizer phải được trả về nguyên vẹn, nhận được: %v", err)
	}
	if store.callCount != 0 {
		t.Error("summarizer lỗi thì không được ghi bản ghi nào")
	}
}

func TestGenerate_SummaryRong_TraLoiKhongHopLe(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	store := &stubStore{}
	completer := &stubCompleter{content: ""}

	svc := newTestService(KindDaily, &stubQuerier{}, &stubResolver{}, store, completer, now)
	_, err := svc.Generate(context.Background(), GenerateParams{})
	if !errors.Is(err, common.ErrSummarizerResponse) {
		t.Fatalf("summary rỗng phải trả ErrSummarizerResponse, nhận được: %v", err)
	}
	if store.callCount != 0 {
		t.Error("summary rỗng thì không được ghi bản ghi nào")
	}
}

func TestGenerate_Monthly_ThangKhongHopLe_TuChoiTruocMoiSideEffect(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	querier := &stubQuerier{}
	store := &stubStore{}
	completer := &stubCompleter{content: "x"}

	svc := newTestService(KindMonthly, querier, &stubResolver{}, store, completer, now)
	_, err := svc.Generate(context.Background(), GenerateParams{Year: 2024, Month: 13})
	if err == nil {
		t.Fatal("tháng 13 phải bị từ chối")
	}
	if querier.callCount != 0 || completer.callCount != 0 || store.callCount != 0 {
		t.Error("tháng không hợp lệ phải chặn trước khi query, gọi summarizer hay ghi")
	}
}

func TestGenerate_DanhMucKhongTonTai_TuChoiTruocKhiQuery(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	querier := &stubQuerier{}
	completer := &stubCompleter{content: "x"}
	store := &stubStore{}
	resolver := &stubResolver{err: common.ErrCategoryNotFound}

	svc := newTestService(KindDaily, querier, resolver, store, completer, now)
	_, err := svc.Generate(context.Background(), GenerateParams{CategoryName: "missing"})
	if !errors.Is(err, common.ErrCategoryNotFound) {
		t.Fatalf("danh mục không tồn tại phải trả ErrCategoryNotFound, nhận được: %v", err)
	}
	if querier.callCount != 0 || completer.callCount != 0 || store.callCount != 0 {
		t.Error("danh mục không hợp lệ phải chặn trước mọi side effect")
	}
}

func TestGenerate_Monthly_LocTheoDanhMuc(t *testing.T) {
	now := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	catID := primitive.NewObjectID()
	querier := &stubQuerier{}
	resolver := &stubResolver{category: catmodels.ReportCategory{ID: catID, Name: "maintenance"}}
	store := &stubStore{}
	completer := &stubCompleter{content: "Quiet month."}

	svc := newTestService(KindMonthly, querier, resolver, store, completer, now)
	got, err := svc.Generate(context.Background(), GenerateParams{Year: 2024, Month: 3, CategoryName: "maintenance"})
	if err != nil {
		t.Fatalf("generate thất bại: %v", err)
	}

	if got.CategoryID == nil || *got.CategoryID != catID {
		t.Errorf("categoryId phải được ghi lại, nhận được: %v", got.CategoryID)
	}
	if querier.gotFilter.CategoryName != "maintenance" {
		t.Errorf("query phải lọc theo danh mục, nhận được: %q", querier.gotFilter.CategoryName)
	}
	wantStart := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	wantEnd := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
	if got.StartDate != wantStart.UnixMilli() || got.EndDate != wantEnd.UnixMilli() {
		t.Errorf("window tháng sai: start=%d end=%d", got.StartDate, got.EndDate)
	}
	if querier.gotFilter.StartDate == nil || !querier.gotFilter.StartDate.Equal(wantStart) {
		t.Errorf("filter query phải dùng đúng window: %v", querier.gotFilter.StartDate)
	}
}

func TestBuildAggregateQuery_LocTheoTimestampVaDanhMuc(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	catID := primitive.NewObjectID()

	filter, opts := BuildAggregateQuery(AggregateFilter{StartDate: &start, EndDate: &end}, &catID)
	ts, ok := filter["timestamp"].(bson.M)
	if !ok {
		t.Fatalf("filter phải chứa điều kiện timestamp, nhận được: %v", filter)
	}
	if ts["$gte"] != start.UnixMilli() || ts["$lte"] != end.UnixMilli() {
		t.Errorf("chặn timestamp sai: %v", ts)
	}
	if filter["categoryId"] != catID {
		t.Errorf("filter phải chứa categoryId, nhận được: %v", filter["categoryId"])
	}
	if opts.Limit != nil {
		t.Error("query tổng hợp không được giới hạn số kết quả")
	}

	empty, _ := BuildAggregateQuery(AggregateFilter{}, nil)
	if len(empty) != 0 {
		t.Errorf("không có điều kiện thì filter phải rỗng, nhận được: %v", empty)
	}
}
