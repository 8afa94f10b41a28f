package naming_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"unicode"

	"github.com/OCharnyshevich/entity-palette/cmd/codegen/internal/naming"
)

func TestCapitalize(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"zombie villager", "Zombie Villager"},
		{"item", "Item"},
		{"Ender Dragon", "Ender Dragon"},
		{"tNT minecart", "TNT Minecart"},
		{"double  space", "Double  Space"},
		{"", ""},
		{"évoker fangs", "Évoker Fangs"},
	}
	for _, tt := range tests {
		if got := naming.Capitalize(tt.in); got != tt.want {
			t.Errorf("Capitalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRemoveSpaces(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Zombie Villager", "ZombieVillager"},
		{"  Item  ", "Item"},
		{"\tTabbed ", "Tabbed"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := naming.RemoveSpaces(tt.in); got != tt.want {
			t.Errorf("RemoveSpaces(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"zombie villager", "ZombieVillager"},
		{"item", "Item"},
		{"Glow Item Frame", "GlowItemFrame"},
		{"boat with chest", "BoatWithChest"},
		{"Jack o'Lantern", "JackO'Lantern"},
	}
	for _, tt := range tests {
		if got := naming.FormatName(tt.in); got != tt.want {
			t.Errorf("FormatName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatName_WordsCapitalizedWithoutSpaces(t *testing.T) {
	names := []string{"a b c", "zombie villager", "ender dragon", "x", "mooshroom", "glow squid"}
	for _, n := range names {
		got := naming.FormatName(n)
		if strings.Contains(got, " ") {
			t.Errorf("FormatName(%q) = %q contains a space", n, got)
		}
		var sb strings.Builder
		for _, word := range strings.Fields(n) {
			sb.WriteRune(unicode.ToUpper(rune(word[0])))
			sb.WriteString(word[1:])
		}
		if got != sb.String() {
			t.Errorf("FormatName(%q) = %q, want %q", n, got, sb.String())
		}
	}
}

func TestFormatVersion(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"1.18.1", "1181"},
		{"1.8", "18"},
		{" 1.20.4 ", "1204"},
		{"21w07a", "21w07a"},
		{"...", ""},
	}
	for _, tt := range tests {
		got := naming.FormatVersion(tt.in)
		if got != tt.want {
			t.Errorf("FormatVersion(%q) = %q, want %q", tt.in, got, tt.want)
		}
		if strings.Contains(got, ".") {
			t.Errorf("FormatVersion(%q) = %q still contains a dot", tt.in, got)
		}
	}
}

func TestFormatClassName(t *testing.T) {
	for _, v := range []string{"1.18.1", "1.8", "1.21.8", "", "1..2"} {
		want := "EntityPalette" + naming.FormatVersion(v)
		if got := naming.FormatClassName(v); got != want {
			t.Errorf("FormatClassName(%q) = %q, want %q", v, got, want)
		}
	}
	if got := naming.FormatClassName("1.18.1"); got != "EntityPalette1181" {
		t.Errorf("FormatClassName(1.18.1) = %q", got)
	}
}

func TestIdentifier(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"zombie villager", "ZombieVillager"},
		{"Jack o'Lantern", "JackOLantern"},
		{"Minecart (TNT)", "MinecartTNT"},
		{"end_crystal", "End_crystal"},
		{"Block Display 2", "BlockDisplay2"},
	}
	for _, tt := range tests {
		got, err := naming.Identifier(tt.in)
		if err != nil {
			t.Errorf("Identifier(%q): unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Identifier(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestIdentifier_Invalid(t *testing.T) {
	for _, in := range []string{"", "   ", "???", "2 headed"} {
		_, err := naming.Identifier(in)
		if !errors.Is(err, naming.ErrInvalidIdentifier) {
			t.Errorf("Identifier(%q): expected ErrInvalidIdentifier, got %v", in, err)
		}
	}
}

func ExampleFormatName() {
	fmt.Println(naming.FormatName("zombie villager"))
	fmt.Println(naming.FormatClassName("1.18.1"))
	// Output:
	// ZombieVillager
	// EntityPalette1181
}
