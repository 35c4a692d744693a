package cmdshared

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/respack/respack/mojang"
	"github.com/spf13/viper"
	"gopkg.in/dixonwille/wmenu.v4"
)

func PromptYesNo(prompt string) bool {
	fmt.Print(prompt)
	if viper.GetBool("non-interactive") {
		fmt.Println("Y (non-interactive mode)")
		return true
	}
	answer, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		fmt.Printf("Failed to prompt user: %v\n", err)
		os.Exit(1)
	}

	ansNormal := strings.ToLower(strings.TrimSpace(answer))
	if len(ansNormal) > 0 && ansNormal[0] == 'n' {
		return false
	}
	return true
}

// PickVersion lets the user choose one of versions. In non-interactive mode the first one is used.
func PickVersion(versions []mojang.ManifestVersion) (mojang.ManifestVersion, error) {
	if len(versions) == 0 {
		return mojang.ManifestVersion{}, errors.New("no versions to choose from")
	}
	if viper.GetBool("non-interactive") {
		fmt.Printf("Using %s (non-interactive mode)\n", versions[0].ID)
		return versions[0], nil
	}

	var picked mojang.ManifestVersion
	menu := wmenu.NewMenu("Choose a number:")
	menu.Option("Cancel", nil, false, nil)
	for i, v := range versions {
		menu.Option(fmt.Sprintf("%s (%s)", v.ID, v.Type), v, i == 0, nil)
	}
	menu.Action(func(menuRes []wmenu.Opt) error {
		if len(menuRes) != 1 || menuRes[0].Value == nil {
			return errors.New("version selection cancelled")
		}
		v, ok := menuRes[0].Value.(mojang.ManifestVersion)
		if !ok {
			return errors.New("error converting interface from wmenu")
		}
		picked = v
		return nil
	})
	err := menu.Run()
	return picked, err
}
