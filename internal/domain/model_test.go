package domain

import "testing"

func TestListParams_PageSize(t *testing.T) {
	tests := []struct {
		name     string
		page     int
		size     int
		wantPage int
		wantSize int
	}{
		{"both absent", 0, 0, 1, 10},
		{"both valid", 3, 25, 3, 25},
		{"negative page", -2, 5, 1, 5},
		{"zero size", 2, 0, 2, 10},
		{"negative size", 1, -1, 1, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := ListParams{Page: tt.page, Size: tt.size}
			page, size := p.PageSize()
			if page != tt.wantPage || size != tt.wantSize {
				t.Errorf("PageSize() = (%d, %d); want (%d, %d)", page, size, tt.wantPage, tt.wantSize)
			}
		})
	}
}

func TestNewPageResult(t *testing.T) {
	r := NewPageResult([]int{1, 2, 3}, 23, 2, 10)
	if r.CurrentPage != 2 || r.Size != 10 {
		t.Errorf("page metadata = (%d, %d); want (2, 10)", r.CurrentPage, r.Size)
	}
	if r.TotalCount != 23 {
		t.Errorf("TotalCount = %d; want 23", r.TotalCount)
	}
	if r.TotalPages != 3 {
		t.Errorf("TotalPages = %d; want 3", r.TotalPages)
	}
}

func TestNewPageResult_EmptyPage(t *testing.T) {
	r := NewPageResult[int](nil, 0, 1, 10)
	if r.Data == nil {
		t.Fatal("Data is nil; want empty slice")
	}
	if len(r.Data) != 0 {
		t.Errorf("len(Data) = %d; want 0", len(r.Data))
	}
	if r.TotalPages != 0 {
		t.Errorf("TotalPages = %d; want 0", r.TotalPages)
	}
}

func TestNewPageResult_ExactMultiple(t *testing.T) {
	r := NewPageResult([]string{"a"}, 20, 1, 10)
	if r.TotalPages != 2 {
		t.Errorf("TotalPages = %d; want 2", r.TotalPages)
	}
}

func TestAuditModel_StampCreateDefaults(t *testing.T) {
	var m AuditModel
	m.StampCreateDefaults()
	if m.CreatedBy != DefaultActorID {
		t.Errorf("CreatedBy = %d; want %d", m.CreatedBy, DefaultActorID)
	}
	if m.LogInst != DefaultLogInst {
		t.Errorf("LogInst = %d; want %d", m.LogInst, DefaultLogInst)
	}

	m = AuditModel{CreatedBy: 7, LogInst: 3}
	m.StampCreateDefaults()
	if m.CreatedBy != 7 || m.LogInst != 3 {
		t.Errorf("explicit audit fields were overwritten: %+v", m)
	}
}

func TestAuditModel_StampUpdate(t *testing.T) {
	var m AuditModel
	m.StampUpdate(0)
	if m.UpdatedBy != DefaultActorID {
		t.Errorf("UpdatedBy = %d; want %d", m.UpdatedBy, DefaultActorID)
	}
	m.StampUpdate(9)
	if m.UpdatedBy != 9 {
		t.Errorf("UpdatedBy = %d; want 9", m.UpdatedBy)
	}
}
