// Package reportsvc - Test dựng query lọc báo cáo.
package reportsvc

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBuildQuery_KhongCoFilter_GioiHan10MoiNhat(t *testing.T) {
	filter, opts := BuildQuery(ReportFilter{}, nil)

	if len(filter) != 0 {
		t.Errorf("không có điều kiện thì filter phải rỗng, nhận được: %v", filter)
	}
	if opts.Limit == nil || *opts.Limit != DefaultQueryLimit {
		t.Errorf("chế độ overview phải giới hạn %d kết quả, nhận được: %v", DefaultQueryLimit, opts.Limit)
	}

	sort, ok := opts.Sort.(bson.D)
	if !ok || len(sort) == 0 {
		t.Fatalf("sort phải là bson.D, nhận được: %v", opts.Sort)
	}
	if sort[0].Key != "timestamp" || sort[0].Value != -1 {
		t.Errorf("phải sắp theo timestamp giảm dần, nhận được: %v", sort)
	}
}

func TestBuildQuery_CoFilter_KhongGioiHan(t *testing.T) {
	search := ReportFilter{SearchText: "leak"}
	_, opts := BuildQuery(search, nil)
	if opts.Limit != nil {
		t.Error("có điều kiện lọc thì không được giới hạn kết quả")
	}

	start := time.Now()
	_, opts = BuildQuery(ReportFilter{StartDate: &start}, nil)
	if opts.Limit != nil {
		t.Error("lọc theo ngày thì không được giới hạn kết quả")
	}

	catID := primitive.NewObjectID()
	_, opts = BuildQuery(ReportFilter{CategoryName: "safety"}, &catID)
	if opts.Limit != nil {
		t.Error("lọc theo danh mục thì không được giới hạn kết quả")
	}
}

func TestBuildQuery_ChanTimestamp(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)

	filter, _ := BuildQuery(ReportFilter{StartDate: &start, EndDate: &end}, nil)
	ts, ok := filter["timestamp"].(bson.M)
	if !ok {
		t.Fatalf("filter phải chứa điều kiện timestamp, nhận được: %v", filter)
	}
	if ts["$gte"] != start.UnixMilli() {
		t.Errorf("chặn dưới sai: %v", ts["$gte"])
	}
	if ts["$lte"] != end.UnixMilli() {
		t.Errorf("chặn trên sai: %v", ts["$lte"])
	}
}

func TestBuildQuery_FullTextVaDanhMuc(t *testing.T) {
	catID := primitive.NewObjectID()
	filter, _ := BuildQuery(ReportFilter{SearchText: "water leak", CategoryName: "maintenance"}, &catID)

	text, ok := filter["$text"].(bson.M)
	if !ok {
		t.Fatalf("filter phải chứa $text, nhận được: %v", filter)
	}
	if text["$search"] != "water leak" {
		t.Errorf("$search sai: %v", text["$search"])
	}
	if filter["categoryId"] != catID {
		t.Errorf("filter phải chứa categoryId đã resolve, nhận được: %v", filter["categoryId"])
	}
}

func TestBuildQuery_Search_SapTheoDoLienQuan(t *testing.T) {
	_, opts := BuildQuery(ReportFilter{SearchText: "leak"}, nil)

	sort, ok := opts.Sort.(bson.D)
	if !ok || len(sort) == 0 {
		t.Fatalf("sort phải là bson.D, nhận được: %v", opts.Sort)
	}
	if sort[0].Key != "score" {
		t.Errorf("có search thì phải sắp theo textScore trước, nhận được: %v", sort)
	}
	meta, ok := sort[0].Value.(bson.M)
	if !ok || meta["$meta"] != "textScore" {
		t.Errorf("giá trị sort đầu phải là $meta textScore, nhận được: %v", sort[0].Value)
	}
	if sort[1].Key != "timestamp" {
		t.Errorf("timestamp phải là tiêu chí sắp thứ hai, nhận được: %v", sort)
	}
}

func TestReportFilter_IsEmpty(t *testing.T) {
	if !(ReportFilter{}).IsEmpty() {
		t.Error("filter rỗng phải IsEmpty")
	}
	now := time.Now()
	cases := []ReportFilter{
		{StartDate: &now},
		{EndDate: &now},
		{CategoryName: "safety"},
		{SearchText: "leak"},
	}
	for i, f := range cases {
		if f.IsEmpty() {
			t.Errorf("case %d: filter có điều kiện không được IsEmpty", i)
		}
	}
}
