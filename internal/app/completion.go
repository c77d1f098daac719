// Where: internal/app/completion.go
// What: Shell completion command implementation.
// Why: Provide tab completion for bash, zsh, and fish.
package app

import (
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/kong"
)

// CompletionCmd defines the structure for the completion command.
type CompletionCmd struct {
	Bash CompletionBashCmd `cmd:"" help:"Generate bash completion script"`
	Zsh  CompletionZshCmd  `cmd:"" help:"Generate zsh completion script"`
	Fish CompletionFishCmd `cmd:"" help:"Generate fish completion script"`
}

type (
	CompletionBashCmd struct{}
	CompletionZshCmd  struct{}
	CompletionFishCmd struct{}
)

func runCompletionBash(cli CLI, out io.Writer) int {
	parser, _ := kong.New(&cli)

	var commands []string
	subcommands := make(map[string][]string)

	for _, node := range parser.Model.Children {
		if node.Hidden {
			continue
		}
		commands = append(commands, node.Name)
		if len(node.Children) > 0 {
			var subs []string
			for _, sub := range node.Children {
				if sub.Hidden {
					continue
				}
				subs = append(subs, sub.Name)
			}
			subcommands[node.Name] = subs
		}
	}

	// Build case statements for subcommands
	var caseParts []string
	for cmd, subs := range subcommands {
		part := fmt.Sprintf(`        %s)
            COMPREPLY=( $(compgen -W "%s" -- "${cur}") )
            return 0
            ;;`, cmd, strings.Join(subs, " "))
		caseParts = append(caseParts, part)
	}

	script := `_dockfresh_completion() {
    local cur prev opts
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"
    opts="%s"

    case "${prev}" in
%s
    esac

    COMPREPLY=( $(compgen -W "${opts}" -- "${cur}") )
}
complete -F _dockfresh_completion dockfresh
`
	fmt.Fprintf(out, script, strings.Join(commands, " "), strings.Join(caseParts, "\n"))
	return 0
}

func runCompletionZsh(cli CLI, out io.Writer) int {
	parser, _ := kong.New(&cli)
	var commands []string
	for _, node := range parser.Model.Children {
		if node.Hidden {
			continue
		}
		commands = append(commands, node.Name)
	}

	script := `#compdef dockfresh
_dockfresh_completion() {
    local -a commands
    commands=(
        %s
    )
    local cmd="${words[2]}"
    if [[ "${cmd}" == "completion" ]]; then
        _values 'shells' bash zsh fish
        return
    fi
    _describe 'commands' commands
}
compdef _dockfresh_completion dockfresh
`
	fmt.Fprintf(out, script, strings.Join(commands, "\n        "))
	return 0
}

func runCompletionFish(cli CLI, out io.Writer) int {
	parser, _ := kong.New(&cli)
	for _, node := range parser.Model.Children {
		if node.Hidden {
			continue
		}
		fmt.Fprintf(out, "complete -c dockfresh -f -n '__fish_use_subcommand' -a %s -d '%s'\n", node.Name, node.Help)
		for _, sub := range node.Children {
			if sub.Hidden {
				continue
			}
			fmt.Fprintf(out, "complete -c dockfresh -f -n '__fish_seen_subcommand_from %s' -a %s -d '%s'\n", node.Name, sub.Name, sub.Help)
		}
	}
	return 0
}
