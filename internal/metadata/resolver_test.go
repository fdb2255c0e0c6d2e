package metadata

import "testing"

func TestResolve(t *testing.T) {
	tests := []struct {
		name string
		stem string
		want Document
	}{
		{
			name: "three parts",
			stem: "Zhang-2023-AnnualReport",
			want: Document{AuthorName: "Zhang", PublishDate: "2023", DocumentName: "AnnualReport"},
		},
		{
			name: "no delimiter falls back",
			stem: "randomname",
			want: Document{AuthorName: UnknownAuthor, PublishDate: "", DocumentName: "randomname"},
		},
		{
			name: "four parts falls back",
			stem: "Zhang-2023-01-01-AnnualReport",
			want: Document{AuthorName: UnknownAuthor, PublishDate: "", DocumentName: "Zhang-2023-01-01-AnnualReport"},
		},
		{
			name: "two parts falls back",
			stem: "Zhang-AnnualReport",
			want: Document{AuthorName: UnknownAuthor, PublishDate: "", DocumentName: "Zhang-AnnualReport"},
		},
		{
			name: "empty middle part falls back",
			stem: "Zhang--AnnualReport",
			want: Document{AuthorName: UnknownAuthor, PublishDate: "", DocumentName: "Zhang--AnnualReport"},
		},
		{
			name: "empty stem falls back",
			stem: "",
			want: Document{AuthorName: UnknownAuthor, PublishDate: "", DocumentName: ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Resolve(tt.stem); got != tt.want {
				t.Errorf("Resolve(%q) = %+v, want %+v", tt.stem, got, tt.want)
			}
		})
	}
}

func TestResolveWithOverrides(t *testing.T) {
	tests := []struct {
		name      string
		stem      string
		overrides Overrides
		want      Document
	}{
		{
			name:      "author override on unparseable stem",
			stem:      "thesis",
			overrides: Overrides{AuthorName: "Li"},
			want:      Document{AuthorName: "Li", PublishDate: "", DocumentName: "thesis"},
		},
		{
			name:      "both overrides beat parsed values",
			stem:      "Zhang-2023-AnnualReport",
			overrides: Overrides{AuthorName: "Wang", PublishDate: "2024-06"},
			want:      Document{AuthorName: "Wang", PublishDate: "2024-06", DocumentName: "AnnualReport"},
		},
		{
			name:      "blank overrides leave parsing intact",
			stem:      "Zhang-2023-AnnualReport",
			overrides: Overrides{AuthorName: "  ", PublishDate: ""},
			want:      Document{AuthorName: "Zhang", PublishDate: "2023", DocumentName: "AnnualReport"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveWithOverrides(tt.stem, tt.overrides); got != tt.want {
				t.Errorf("ResolveWithOverrides(%q, %+v) = %+v, want %+v", tt.stem, tt.overrides, got, tt.want)
			}
		})
	}
}
