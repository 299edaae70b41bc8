package main

// Message constants
const (
	MsgRootShort = "Bootstrap a development machine from a dotfiles repository"
	MsgRootLong  = `dotup links configuration files from a dotfiles repository into their
OS-conventional locations, optionally installs packages, and configures a
few named applications (git, VS Code, zsh, iTerm2).

The dotfiles root defaults to ~/dotfiles and can be overridden with the
DOTFILES_PATH environment variable. Step enablement and the package list
live in dotup.toml (or dotup.yaml) inside the dotfiles root.`

	MsgRootExample = `  # Run the full setup against ~/dotfiles
  dotup

  # Use a different dotfiles repository
  DOTFILES_PATH=~/src/dotfiles dotup

  # See what each step is doing
  dotup -vv`

	MsgFlagVerbose  = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDotfiles = "Dotfiles repository to use instead of ~/dotfiles"
	MsgFlagQuiet    = "Suppress per-step console output"

	MsgGenConfigShort = "Print the default configuration as TOML"
	MsgGenConfigLong  = `Print the built-in default configuration. Redirect it into your dotfiles
root as dotup.toml to customize which steps run and which packages are
installed.`

	MsgReadmeShort = "Render the dotfiles repository README"
)
