package basesvc

import (
	"testing"

	catmodels "report_hub/internal/api/category/models"
)

// Model không có omitempty trên createdAt nên ToUpdateData luôn đưa createdAt=0 vào $set.
func TestToUpdateData_ModelBocTrongSet(t *testing.T) {
	update, err := ToUpdateData(catmodels.ReportCategory{Name: "general"})
	if err != nil {
		t.Fatalf("ToUpdateData trả về lỗi: %v", err)
	}

	if update.Set == nil {
		t.Fatal("Set không được là nil khi chuyển đổi từ model")
	}
	if got := update.Set["name"]; got != "general" {
		t.Errorf("Set[name] = %v, mong muốn general", got)
	}
	if _, ok := update.Set["createdAt"]; !ok {
		t.Error("Mong muốn createdAt có mặt trong Set sau khi marshal model (giá trị 0)")
	}
	if update.SetOnInsert != nil {
		t.Errorf("SetOnInsert phải là nil trước khi gắn timestamps, nhận được %v", update.SetOnInsert)
	}
}

func TestToUpdateData_GiuNguyenUpdateData(t *testing.T) {
	original := &UpdateData{Set: map[string]interface{}{"name": "safety"}}

	update, err := ToUpdateData(original)
	if err != nil {
		t.Fatalf("ToUpdateData trả về lỗi: %v", err)
	}
	if update != original {
		t.Error("Mong muốn ToUpdateData trả về đúng con trỏ UpdateData đã truyền vào")
	}
}

// $set và $setOnInsert phải tách biệt: MongoDB từ chối update có cùng trường
// trong hai operator (ConflictingUpdateOperators), kể cả ở lần insert đầu tiên.
func TestApplyUpsertTimestamps_SetVaSetOnInsertTachBiet(t *testing.T) {
	update, err := ToUpdateData(catmodels.ReportCategory{Name: "general"})
	if err != nil {
		t.Fatalf("ToUpdateData trả về lỗi: %v", err)
	}

	now := int64(1756684800000)
	applyUpsertTimestamps(update, now)

	if _, ok := update.Set["createdAt"]; ok {
		t.Error("createdAt phải bị loại khỏi Set trước khi đưa vào SetOnInsert")
	}
	if got := update.Set["updatedAt"]; got != now {
		t.Errorf("Set[updatedAt] = %v, mong muốn %d", got, now)
	}
	if got := update.SetOnInsert["createdAt"]; got != now {
		t.Errorf("SetOnInsert[createdAt] = %v, mong muốn %d", got, now)
	}

	for key := range update.Set {
		if _, ok := update.SetOnInsert[key]; ok {
			t.Errorf("Trường %q xuất hiện trong cả Set và SetOnInsert", key)
		}
	}
}

func TestApplyUpsertTimestamps_KhoiTaoMapKhiNil(t *testing.T) {
	update := &UpdateData{}

	now := int64(1756684800000)
	applyUpsertTimestamps(update, now)

	if got := update.Set["updatedAt"]; got != now {
		t.Errorf("Set[updatedAt] = %v, mong muốn %d", got, now)
	}
	if got := update.SetOnInsert["createdAt"]; got != now {
		t.Errorf("SetOnInsert[createdAt] = %v, mong muốn %d", got, now)
	}
}
