package naming

import "testing"

func TestDerive(t *testing.T) {
	tests := []struct {
		name string
		base string
		rule Rule
		want string
	}{
		{"proxy strips firmware prefix", "GL012345", ProxyRule, "GH012345.MP4"},
		{"thumbnail keeps base name", "GH012345", ThumbnailRule, "GH012345.JPG"},
		{"proxy on chaptered name", "GL020345", ProxyRule, "GH020345.MP4"},
		{"offset past end is degenerate", "G", ProxyRule, "GH.MP4"},
		{"empty base name", "", ThumbnailRule, ".JPG"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Derive(tt.base, tt.rule); got != tt.want {
				t.Errorf("Derive(%q) = %q, want %q", tt.base, got, tt.want)
			}
		})
	}
}

func TestCorrelationKey(t *testing.T) {
	tests := []struct {
		base string
		want string
	}{
		{"GH000002", "000002"},
		{"GL000002", "000002"},
		{"GX011234", "011234"},
		{"GH", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := CorrelationKey(tt.base); got != tt.want {
			t.Errorf("CorrelationKey(%q) = %q, want %q", tt.base, got, tt.want)
		}
	}
}

func TestNodeFor(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		wantBase string
		wantExt  string
	}{
		{"uppercase extension lowered", "/card/GH000002.MP4", "GH000002", "mp4"},
		{"proxy file", "/card/GL000002.LRV", "GL000002", "lrv"},
		{"no extension", "/card/README", "README", ""},
		{"dotfile is extensionless", "/card/.Spotlight-V100", ".Spotlight-V100", ""},
		{"dotfile with extension", "/card/.hidden.txt", ".hidden", "txt"},
		{"multiple dots", "/card/GOPR0001.v2.JPG", "GOPR0001.v2", "jpg"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := NodeFor(tt.path)
			if n.Base != tt.wantBase || n.Ext != tt.wantExt {
				t.Errorf("NodeFor(%q) = {Base:%q Ext:%q}, want {Base:%q Ext:%q}",
					tt.path, n.Base, n.Ext, tt.wantBase, tt.wantExt)
			}
		})
	}
}

func TestCanonicalFolders_Exhaustive(t *testing.T) {
	want := map[string]string{"mp4": HiRes, "lrv": Proxy, "thm": Thumbnails}
	if len(CanonicalFolders) != len(want) {
		t.Fatalf("CanonicalFolders has %d entries, want %d", len(CanonicalFolders), len(want))
	}
	for ext, folder := range want {
		if CanonicalFolders[ext] != folder {
			t.Errorf("CanonicalFolders[%q] = %q, want %q", ext, CanonicalFolders[ext], folder)
		}
	}
}
