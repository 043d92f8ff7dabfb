package generator

import "testing"

func TestSeedUtils(t *testing.T) {
	t.Run("dereferenceSeed: nil の場合は 0 を返すのだ", func(t *testing.T) {
		if got := dereferenceSeed(nil); got != 0 {
			t.Errorf("expected 0, got %v", got)
		}
	})

	t.Run("dereferenceSeed: 値がある場合はその値を返すのだ", func(t *testing.T) {
		var val int64 = 999
		if got := dereferenceSeed(&val); got != 999 {
			t.Errorf("expected 999, got %v", got)
		}
	})

	t.Run("seedToPtrInt32: nil は nil のまま返すのだ", func(t *testing.T) {
		if got := seedToPtrInt32(nil); got != nil {
			t.Errorf("expected nil, got %v", got)
		}
	})

	t.Run("seedToPtrInt32: 値は int32 に変換されること", func(t *testing.T) {
		var val int64 = 12345
		got := seedToPtrInt32(&val)
		if got == nil || *got != 12345 {
			t.Errorf("expected 12345, got %v", got)
		}
	})
}

func TestIsSafeURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{"不正なスキーム", "gopher://example.com", true},
		{"パース不能なURL", "://not-a-url", true},
		{"ループバックIP直接指定", "http://127.0.0.1/admin", true},
		{"プライベートIP (クラスA)", "http://10.255.255.254/metadata", true},
		{"プライベートIP (クラスC)", "http://192.168.1.1/router", true},
		{"リンクローカル", "http://169.254.169.254/latest/meta-data", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			safe, err := IsSafeURL(tt.url)
			if (err != nil) != tt.wantErr {
				t.Errorf("IsSafeURL() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && safe {
				t.Errorf("%s: unsafe URL was flagged as safe", tt.url)
			}
		})
	}
}
