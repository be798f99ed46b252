// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/staranto/filecache/internal/meta"
)

const bashCompletionScript = `# bash completion for fcache
# Fallback if bash-completion is not installed
if ! declare -F _get_comp_words_by_ref >/dev/null 2>&1; then
  _get_comp_words_by_ref() {
    cur=${COMP_WORDS[COMP_CWORD]}
    prev=${COMP_WORDS[COMP_CWORD-1]}
  }
fi

_fcache()
{
    local cur prev cmd
    COMPREPLY=()
    _get_comp_words_by_ref -n : cur prev

    if [[ ${COMP_CWORD} -eq 1 ]]; then
        COMPREPLY=( $(compgen -W "clear get has ls mget mset purge rm set completion --help --version" -- "$cur") )
        return 0
    fi

    cmd=${COMP_WORDS[1]}
    local common="--dir -d --read --no-read --write --no-write --compress --no-compress --convert --no-convert --expiry -e"

    case "$cmd" in
        get|mget)
            local opts="$common --default"
            ;;
        ls)
            local opts="$common --color -c --filter -f --output -o --titles -t"
            ;;
        purge)
            local opts="$common --quiet -q"
            ;;
        completion)
            COMPREPLY=( $(compgen -W "bash zsh" -- "$cur") )
            return 0
            ;;
        *)
            local opts="$common"
            ;;
    esac

    if [[ "$prev" == "--output" || "$prev" == "-o" ]]; then
        COMPREPLY=( $(compgen -W "text json yaml" -- "$cur") )
        return 0
    fi

    if [[ "$prev" == "--dir" || "$prev" == "-d" ]]; then
        COMPREPLY=( $(compgen -o dirnames -- "$cur") )
        return 0
    fi

    if [[ "$cur" == -* ]]; then
        COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
    fi
    return 0
}

complete -F _fcache fcache
`

const zshCompletionScript = `#compdef fcache

_fcache() {
  local -a cmds
  cmds=(
    'clear:delete every entry'
    'get:print a cached value'
    'has:test whether a key has an entry'
    'ls:list cache entries'
    'mget:print several cached values'
    'mset:store several values'
    'purge:delete entries older than --expiry'
    'rm:delete entries'
    'set:store a value'
    'completion:generate shell completion script'
  )

  local -a common
  common=(
  '(-d --dir)'{-d,--dir}'[cache directory]:directory:_directories'
  '(--read --no-read)'{--read,--no-read}'[serve values from the cache]'
  '(--write --no-write)'{--write,--no-write}'[store values]'
  '(--compress --no-compress)'{--compress,--no-compress}'[gzip values on write]'
  '(--convert --no-convert)'{--convert,--no-convert}'[rewrite plain entries as gzip]'
  '(-e --expiry)'{-e,--expiry}'[expiry in seconds]:seconds'
  )

  if (( CURRENT == 2 )); then
    _describe -t commands 'fcache commands' cmds
    return
  fi

  case $words[2] in
    get|mget)
      _arguments -C $common '--default[value on miss]:value' '*:key'
      ;;
    ls)
      _arguments -C \
        $common \
        '(-c --color)'{-c,--color}'[enable colored text]' \
        '(-f --filter)'{-f,--filter}'[name glob]:glob' \
        '(-o --output)'{-o,--output}'[output format]:format:(text json yaml)' \
        '(-t --titles)'{-t,--titles}'[show titles]'
      ;;
    purge)
      _arguments -C $common '(-q --quiet)'{-q,--quiet}'[print nothing]'
      ;;
    completion)
      _arguments '1: :((bash zsh))'
      ;;
    *)
      _arguments -C $common '*:key'
      ;;
  esac
}

# If this file is sourced directly (not autoloaded via fpath), ensure compsys is initialized and register the completion
if ! typeset -f compdef >/dev/null 2>&1; then
  autoload -Uz compinit && compinit -i
fi
compdef _fcache fcache
`

func CompletionCommandAction(ctx context.Context, cmd *cli.Command) error {
	shell := cmd.Args().First()
	if shell == "" {
		// Try to detect from SHELL
		sh := os.Getenv("SHELL")
		switch {
		case strings.HasSuffix(sh, "zsh"):
			shell = "zsh"
		case strings.HasSuffix(sh, "bash"):
			shell = "bash"
		}
	}

	switch shell {
	case "bash":
		fmt.Fprint(stdout(cmd), bashCompletionScript)
	case "zsh":
		fmt.Fprint(stdout(cmd), zshCompletionScript)
	default:
		return fmt.Errorf("usage: fcache completion [bash|zsh]")
	}
	return nil
}

func CompletionCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "completion",
		Usage:     "generate shell completion script",
		UsageText: "fcache completion [bash|zsh]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Action: CompletionCommandAction,
	}
}
