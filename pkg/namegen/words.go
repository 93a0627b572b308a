package namegen

// Word lists for the Dictionary scheme. The plain adjective-noun space holds
// len(adjectives)*len(nouns) names; past that, Next falls back to hex-suffixed
// candidates drawn from a far larger space.
var adjectives = []string{
	"amber", "bold", "brisk", "calm", "clever", "crimson", "daring", "deft",
	"eager", "fabled", "fleet", "gentle", "hardy", "humble", "ivory", "jolly",
	"keen", "lively", "lucid", "mellow", "nimble", "noble", "opal", "plucky",
	"quiet", "rustic", "sly", "stout", "tranquil", "vivid", "wily", "zesty",
}

var nouns = []string{
	"badger", "bison", "condor", "crane", "dingo", "egret", "ferret", "finch",
	"gecko", "heron", "ibis", "jackal", "kestrel", "lemur", "lynx", "macaw",
	"marmot", "newt", "ocelot", "osprey", "petrel", "quokka", "raven", "shrike",
	"stoat", "tapir", "vole", "walrus", "weasel", "wombat", "wren", "yak",
}
