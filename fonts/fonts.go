package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	Title   FontName = "title"
	Button  FontName = "button"
	Setting FontName = "setting"
	Small   FontName = "small"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

var (
	fonts = map[FontName]font.Face{}
)

// LoadDefaults registers every face the game draws with.
func LoadDefaults(buttonSize, settingSize float64) error {
	if err := LoadFontWithSize(Title, gobold.TTF, 64); err != nil {
		return err
	}
	if err := LoadFontWithSize(Button, goregular.TTF, buttonSize); err != nil {
		return err
	}
	if err := LoadFontWithSize(Setting, goregular.TTF, settingSize); err != nil {
		return err
	}
	return LoadFontWithSize(Small, goregular.TTF, 14)
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) error {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("failed to parse font %s: %w", name, err)
	}
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
	return nil
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
