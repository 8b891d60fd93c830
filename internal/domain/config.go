package domain

// KeyPrefix is the default key namespace for all stringdex keys.
const KeyPrefix = "stringdex:"
