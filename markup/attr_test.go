package markup

import "testing"

func TestNormalizeAttribute(t *testing.T) {
	testCases := []struct {
		name   string
		key    string
		value  any
		want   string
		wantOK bool
	}{
		{
			name:   "plain value",
			key:    "href",
			value:  "https://example.com/page",
			want:   "https://example.com/page",
			wantOK: true,
		},
		{
			name:   "absent value dropped",
			key:    "title",
			value:  nil,
			wantOK: false,
		},
		{
			name:   "value escaped",
			key:    "alt",
			value:  `a "quoted" <name>`,
			want:   "a &#34;quoted&#34; &lt;name&gt;",
			wantOK: true,
		},
		{
			name:   "hex color lowercased",
			key:    "color",
			value:  "#ABC123",
			want:   "#abc123",
			wantOK: true,
		},
		{
			name:   "short hex color",
			key:    "background-color",
			value:  "#F0A",
			want:   "#f0a",
			wantOK: true,
		},
		{
			name:   "invalid hex length dropped",
			key:    "color",
			value:  "#ABCD",
			wantOK: false,
		},
		{
			name:   "invalid hex digit dropped",
			key:    "border-color",
			value:  "#ggg",
			wantOK: false,
		},
		{
			name:   "named color lowercased",
			key:    "color",
			value:  "RED",
			want:   "red",
			wantOK: true,
		},
		{
			name:   "unknown color name dropped",
			key:    "color",
			value:  "blurple",
			wantOK: false,
		},
		{
			name:   "class tokens normalized",
			key:    "class",
			value:  "Intro_Title  extra_Wide",
			want:   "intro-title extra-wide",
			wantOK: true,
		},
		{
			name:   "style declarations tidied",
			key:    "style",
			value:  "COLOR: #FF0000;font-weight:bold;",
			want:   "color: #ff0000; font-weight: bold",
			wantOK: true,
		},
		{
			name:   "integer value stringified",
			key:    "colspan",
			value:  2,
			want:   "2",
			wantOK: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := NormalizeAttribute(tc.key, tc.value)
			if ok != tc.wantOK {
				t.Fatalf("NormalizeAttribute(%q, %v) ok = %v, want %v", tc.key, tc.value, ok, tc.wantOK)
			}
			if ok && got != tc.want {
				t.Errorf("NormalizeAttribute(%q, %v) = %q, want %q", tc.key, tc.value, got, tc.want)
			}
		})
	}
}
