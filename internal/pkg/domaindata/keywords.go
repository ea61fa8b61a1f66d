// Package domaindata holds the registry of academic domains: detection
// keywords, template sample questions, and template flashcards.
package domaindata

// GeneralDomain is the fallback when no domain keywords match.
const GeneralDomain = "general"

// Keywords maps each known domain to the phrases used for detection.
// Detection is a case-insensitive substring count over document text.
var Keywords = map[string][]string{
	"computer_networks": {
		"osi model", "tcp/ip", "network", "protocol", "router", "switch", "ethernet",
		"ip address", "subnet", "dns", "http", "https", "firewall", "bandwidth",
		"packet", "frame", "topology", "lan", "wan", "wireless", "fiber optic",
	},
	"operating_systems": {
		"operating system", "kernel", "process", "thread", "memory management", "cpu scheduling",
		"deadlock", "semaphore", "mutex", "virtual memory", "paging", "segmentation",
		"file system", "system call", "interrupt", "context switching", "multiprogramming",
		"multitasking", "unix", "linux", "windows", "scheduling algorithm", "synchronization",
	},
	"database": {
		"database", "sql", "nosql", "rdbms", "table", "query", "join", "index", "primary key",
		"foreign key", "normalization", "acid", "transaction", "relational", "mongodb",
		"mysql", "postgresql", "oracle", "select", "insert", "update", "delete", "schema",
		"entity relationship", "data modeling", "stored procedure", "trigger", "view",
	},
	"computer_science": {
		"algorithm", "data structure", "programming", "coding", "software", "compiler",
		"debugging", "array", "linked list", "stack", "queue", "tree", "graph",
		"sorting", "searching", "complexity", "recursion", "object oriented", "inheritance",
	},
	"software_engineering": {
		"software engineering", "sdlc", "agile", "scrum", "waterfall", "requirements", "design patterns",
		"testing", "unit test", "integration test", "version control", "git", "code review",
		"refactoring", "debugging", "maintenance", "documentation", "uml", "architecture",
		"microservices", "api", "framework", "deployment", "devops", "continuous integration",
	},
	"electrical_engineering": {
		"electrical engineering", "circuit", "voltage", "current", "resistance", "capacitor",
		"inductor", "transistor", "diode", "amplifier", "filter", "oscillator", "power",
		"electrical power", "transformer", "motor", "generator", "control system", "signal processing",
		"electromagnetics", "electronics", "digital circuit", "analog circuit", "microprocessor",
	},
	"mechanical_engineering": {
		"mechanical engineering", "thermodynamics", "fluid mechanics", "heat transfer", "mechanics",
		"statics", "dynamics", "materials", "strength of materials", "machine design", "manufacturing",
		"cad", "finite element", "vibration", "control system", "robotics", "automation",
		"engine", "turbine", "pump", "compressor", "gear", "bearing", "stress", "strain",
	},
	"civil_engineering": {
		"civil engineering", "structural", "concrete", "steel", "foundation", "beam", "column",
		"bridge", "building", "construction", "surveying", "geotechnical", "soil mechanics",
		"hydraulics", "water resources", "transportation", "highway", "pavement", "earthquake",
		"seismic", "load", "stress analysis", "reinforcement", "structural analysis",
	},
	"mathematics": {
		"equation", "function", "derivative", "integral", "matrix", "vector", "calculus",
		"algebra", "geometry", "probability", "statistics", "theorem", "proof", "formula",
		"trigonometry", "logarithm", "polynomial", "linear", "quadratic",
	},
	"physics": {
		"force", "energy", "momentum", "velocity", "acceleration", "mass", "gravity",
		"electric", "magnetic", "wave", "frequency", "amplitude", "quantum", "particle",
		"thermodynamics", "mechanics", "optics", "relativity", "nuclear",
	},
	"biology": {
		"cell", "dna", "rna", "protein", "enzyme", "chromosome", "gene", "evolution",
		"photosynthesis", "mitosis", "meiosis", "organism", "species", "ecosystem",
		"metabolism", "respiration", "reproduction", "heredity", "mutation",
	},
	"chemistry": {
		"atom", "molecule", "element", "compound", "reaction", "bond", "acid", "base",
		"ion", "electron", "proton", "neutron", "periodic table", "catalyst", "solution",
		"ph", "oxidation", "reduction", "organic", "inorganic",
	},
	"business": {
		"management", "marketing", "finance", "accounting", "strategy", "profit", "revenue",
		"investment", "stock", "market", "customer", "competition", "supply chain",
		"human resources", "leadership", "entrepreneur", "budget", "analysis",
	},
	"literature": {
		"author", "character", "plot", "theme", "setting", "narrative", "metaphor",
		"symbolism", "poetry", "novel", "drama", "prose", "verse", "literary",
		"fiction", "non-fiction", "genre", "style", "analysis",
	},
	"oop": {
		"object oriented programming", "class", "object", "inheritance", "polymorphism",
		"encapsulation", "abstraction", "method", "attribute", "constructor", "destructor",
		"overloading", "overriding", "interface", "abstract class", "virtual function",
		"static", "public", "private", "protected", "this", "super", "extends", "implements",
	},
	"os": {
		"operating system", "process", "thread", "scheduling", "memory management", "virtual memory",
		"paging", "segmentation", "deadlock", "synchronization", "semaphore", "mutex", "monitor",
		"critical section", "race condition", "file system", "inode", "directory", "boot process",
		"system call", "interrupt", "context switch", "kernel", "user space", "kernel space",
	},
	"dbms": {
		"database management system", "relational database", "sql", "nosql", "acid properties",
		"transaction", "concurrency control", "locking", "indexing", "b-tree", "hash index",
		"normalization", "denormalization", "entity relationship", "primary key", "foreign key",
		"join", "query optimization", "stored procedure", "trigger", "view", "backup", "recovery",
	},
}
