package payload

// Username is the account name every payload registers under.
const Username = "tempuser"

// digits is the width of the zero-padded numeric component.
const digits = 4

// numbers is the size of the numeric range [0, numbers).
const numbers = 10000

// subjects are department prefixes used by the target's account naming scheme.
var subjects = []string{"clc", "elc", "comp", "eie", "eng"}

var passwordSuffixes = []string{"Password", "password"}

var recoverySuffixes = []string{"Recover", "recover"}
