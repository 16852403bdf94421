package database

import "testing"

func TestPoolSettingsWithDefaults(t *testing.T) {
	tests := []struct {
		name    string
		in      PoolSettings
		wantMax int32
		wantMin int32
	}{
		{"zero values get defaults", PoolSettings{}, 25, 5},
		{"explicit values kept", PoolSettings{MaxConns: 10, MinConns: 2}, 10, 2},
		{"negative values get defaults", PoolSettings{MaxConns: -1, MinConns: -1}, 25, 5},
		{"min clamped to max", PoolSettings{MaxConns: 3, MinConns: 8}, 3, 3},
		{"zero min with small max", PoolSettings{MaxConns: 2}, 2, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.withDefaults()
			if got.MaxConns != tt.wantMax {
				t.Errorf("MaxConns = %d, want %d", got.MaxConns, tt.wantMax)
			}
			if got.MinConns != tt.wantMin {
				t.Errorf("MinConns = %d, want %d", got.MinConns, tt.wantMin)
			}
		})
	}
}
