// Package basehdl - Test các helper xử lý filter và sort của handler cơ sở.
package basehdl

import (
	"testing"

	catdto "report_hub/internal/api/category/dto"
	catmodels "report_hub/internal/api/category/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newTestHandler() *BaseHandler[catmodels.ReportCategory, catdto.ReportCategoryCreateInput] {
	return NewBaseHandler[catmodels.ReportCategory, catdto.ReportCategoryCreateInput](nil)
}

func TestNormalizeFilter_OidExtendedJSON(t *testing.T) {
	h := newTestHandler()
	oid := primitive.NewObjectID()

	normalized := h.normalizeFilter(map[string]interface{}{
		"categoryId": map[string]interface{}{"$oid": oid.Hex()},
	})

	if normalized["categoryId"] != oid {
		t.Errorf("$oid phải được chuyển thành ObjectID, nhận được: %v (%T)", normalized["categoryId"], normalized["categoryId"])
	}
}

func TestNormalizeFilter_IDFieldString(t *testing.T) {
	h := newTestHandler()
	oid := primitive.NewObjectID()

	normalized := h.normalizeFilter(map[string]interface{}{
		"categoryId": oid.Hex(),
		"name":       oid.Hex(), // không phải ID field, giữ nguyên string
	})

	if normalized["categoryId"] != oid {
		t.Errorf("string hex trên ID field phải thành ObjectID, nhận được: %T", normalized["categoryId"])
	}
	if normalized["name"] != oid.Hex() {
		t.Errorf("field thường phải giữ nguyên string, nhận được: %v", normalized["name"])
	}
}

func TestNormalizeFilter_NestedOperator(t *testing.T) {
	h := newTestHandler()
	a, b := primitive.NewObjectID(), primitive.NewObjectID()

	normalized := h.normalizeFilter(map[string]interface{}{
		"categoryId": map[string]interface{}{
			"$in": []interface{}{a.Hex(), b.Hex()},
		},
	})

	inner, ok := normalized["categoryId"].(map[string]interface{})
	if !ok {
		t.Fatalf("operator map phải được giữ lại, nhận được: %T", normalized["categoryId"])
	}
	arr, ok := inner["$in"].([]interface{})
	if !ok || len(arr) != 2 {
		t.Fatalf("$in phải là mảng 2 phần tử, nhận được: %v", inner["$in"])
	}
	if arr[0] != a || arr[1] != b {
		t.Errorf("các phần tử trong $in phải thành ObjectID, nhận được: %v", arr)
	}
}

func TestValidateFilter_DeniedField(t *testing.T) {
	h := newTestHandler()
	err := h.validateFilter(map[string]interface{}{"password": "x"})
	if err == nil {
		t.Fatal("field bị cấm phải trả lỗi")
	}
}

func TestValidateFilter_OperatorKhongChoPhep(t *testing.T) {
	h := newTestHandler()
	err := h.validateFilter(map[string]interface{}{
		"name": map[string]interface{}{"$where": "1 == 1"},
	})
	if err == nil {
		t.Fatal("operator $where phải bị chặn")
	}

	err = h.validateFilter(map[string]interface{}{
		"name": map[string]interface{}{"$in": []interface{}{"a", "b"}},
	})
	if err != nil {
		t.Errorf("operator $in phải được cho phép: %v", err)
	}
}

func TestValidateFilter_QuaNhieuField(t *testing.T) {
	h := newTestHandler()
	filter := map[string]interface{}{}
	for _, k := range []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k"} {
		filter[k] = 1
	}
	if err := h.validateFilter(filter); err == nil {
		t.Fatal("filter quá 10 field phải trả lỗi")
	}
}

func TestParseSortOption_GiuThuTuKey(t *testing.T) {
	sort := parseSortOption(`{"sort": {"timestamp": -1, "_id": -1, "name": 1}}`)

	if len(sort) != 3 {
		t.Fatalf("phải có 3 key sort, nhận được: %d", len(sort))
	}
	if sort[0].Key != "timestamp" || sort[1].Key != "_id" || sort[2].Key != "name" {
		t.Errorf("thứ tự key phải giữ nguyên như JSON: %v", sort)
	}
	if sort[0].Value != -1 || sort[2].Value != 1 {
		t.Errorf("giá trị sort sai: %v", sort)
	}
}

func TestParseSortOption_GiaTriKhongHopLe(t *testing.T) {
	sort := parseSortOption(`{"sort": {"timestamp": 2, "name": "asc", "valid": 1}}`)

	if len(sort) != 1 {
		t.Fatalf("chỉ giá trị ±1 được chấp nhận, nhận được: %v", sort)
	}
	if sort[0].Key != "valid" {
		t.Errorf("key hợp lệ phải được giữ: %v", sort)
	}
}

func TestParseSortOption_KhongCoSort(t *testing.T) {
	if sort := parseSortOption(`{"limit": 5}`); len(sort) != 0 {
		t.Errorf("không có sort thì phải trả về rỗng, nhận được: %v", sort)
	}
	if sort := parseSortOption(`not json`); len(sort) != 0 {
		t.Errorf("JSON hỏng thì phải trả về rỗng, nhận được: %v", sort)
	}
}
