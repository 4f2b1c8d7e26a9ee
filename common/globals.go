package common

// KotcVersion is the current version of the kotc toolchain.
const KotcVersion = "0.3.1"

// KotcProfileFileName is the default file name for a lowering profile.
const KotcProfileFileName = "kotc-profile.toml"
