package sunbeam

import (
	"testing"
)

type staticBox BoundingBox

func (s staticBox) BoundingBox() BoundingBox { return BoundingBox(s) }

func TestRef_SetAndGet(t *testing.T) {
	type tc struct {
		setup   func() (*Ref[Measurer], Measurer)
		wantSet bool
	}

	tests := map[string]tc{
		"empty ref": {
			setup: func() (*Ref[Measurer], Measurer) {
				return NewRef[Measurer](), nil
			},
			wantSet: false,
		},
		"set and get returns same value": {
			setup: func() (*Ref[Measurer], Measurer) {
				r := NewRef[Measurer]()
				m := staticBox{Width: 1, Height: 1}
				r.Set(m)
				return r, m
			},
			wantSet: true,
		},
		"overwrite returns latest value": {
			setup: func() (*Ref[Measurer], Measurer) {
				r := NewRef[Measurer]()
				r.Set(staticBox{Width: 1})
				m := staticBox{Width: 2}
				r.Set(m)
				return r, m
			},
			wantSet: true,
		},
		"cleared ref is empty": {
			setup: func() (*Ref[Measurer], Measurer) {
				r := NewRef[Measurer]()
				r.Set(staticBox{Width: 1})
				r.Clear()
				return r, nil
			},
			wantSet: false,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			r, want := tt.setup()
			got, ok := r.Get()
			if ok != tt.wantSet {
				t.Fatalf("Get() ok = %v, want %v", ok, tt.wantSet)
			}
			if r.IsSet() != tt.wantSet {
				t.Errorf("IsSet() = %v, want %v", r.IsSet(), tt.wantSet)
			}
			if got != want {
				t.Errorf("Get() = %v, want %v", got, want)
			}
		})
	}
}
