// Command scicalc evaluates scientific-calculator expressions from its
// arguments, an input file, or an interactive prompt. It owns the state the
// engine deliberately does not: the previous answer, inserted for "ans", and
// a named memory that can be saved to and loaded from YAML files.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"gopkg.in/yaml.v3"

	"github.com/calclab/scicalc"
)

const replHelp = `scicalc commands:
/angle deg|rad|grad	set the angle unit
/mode norm|fix|sci|eng	set the display mode
/fix n			set the displayed decimals
/set name [expr]	store expr (default: last answer) in memory
/vars			print memory
/del name...		delete memory entries
/read file		load memory from a YAML file
/write file		save memory to a YAML file
/help			print this help
/exit			exit

Anything else is evaluated as an expression. "ans" and memory names are
replaced by their values before evaluation.`

type session struct {
	cfg    scicalc.Config
	ans    float64
	hasAns bool
	memory map[string]float64
	echo   bool
}

func main() {
	log.SetFlags(0)
	var (
		angle, mode, inname, memname string
		decimals                     int
		echo                         bool
	)
	flag.StringVar(&angle, "angle", "deg", "angle unit: deg, rad, or grad")
	flag.StringVar(&mode, "mode", "norm", "display mode: norm, fix, sci, or eng")
	flag.IntVar(&decimals, "fix", 2, "displayed decimals in fix, sci, and eng modes")
	flag.StringVar(&inname, "in", "", "input file of expressions, one per line")
	flag.StringVar(&memname, "mem", "", "memory file to load at startup")
	flag.BoolVar(&echo, "echo", false, "echo each expression before its result")
	flag.Parse()

	sess := &session{
		cfg:    scicalc.Config{FixDecimals: decimals},
		memory: make(map[string]float64),
		echo:   echo,
	}
	var ok bool
	if sess.cfg.AngleMode, ok = parseAngle(angle); !ok {
		log.Fatalf("unknown angle unit %q", angle)
	}
	if sess.cfg.DisplayMode, ok = parseMode(mode); !ok {
		log.Fatalf("unknown display mode %q", mode)
	}
	if memname != "" {
		if err := sess.readMemory(memname); err != nil {
			log.Fatal(err)
		}
	}

	if inname != "" {
		lines, err := readLines(inname)
		if err != nil {
			log.Fatal(err)
		}
		for _, line := range lines {
			sess.evaluate(line)
		}
	}
	for _, arg := range flag.Args() {
		sess.evaluate(arg)
	}
	if inname == "" && flag.NArg() == 0 {
		sess.repl()
	}
}

func parseAngle(s string) (scicalc.AngleMode, bool) {
	switch s {
	case "deg":
		return scicalc.Degrees, true
	case "rad":
		return scicalc.Radians, true
	case "grad":
		return scicalc.Gradians, true
	default:
		return 0, false
	}
}

func parseMode(s string) (scicalc.DisplayMode, bool) {
	switch s {
	case "norm":
		return scicalc.Norm, true
	case "fix":
		return scicalc.Fix, true
	case "sci":
		return scicalc.Sci, true
	case "eng":
		return scicalc.Eng, true
	default:
		return 0, false
	}
}

func (s *session) repl() {
	fmt.Println("scicalc: type an expression, or /help")
	in := bufio.NewScanner(os.Stdin)
	fmt.Print("> ")
	for in.Scan() {
		line := strings.TrimSpace(in.Text())
		switch {
		case line == "":
		case strings.HasPrefix(line, "/"):
			if !s.command(line) {
				return
			}
		default:
			s.evaluate(line)
		}
		fmt.Print("> ")
	}
}

// command runs a slash command. It reports false when the session should
// end.
func (s *session) command(line string) bool {
	fields := strings.Fields(line[1:])
	cmd := ""
	if len(fields) > 0 {
		cmd = fields[0]
	}
	args := fields[1:]
	switch cmd {
	case "exit":
		return false
	case "help":
		fmt.Println(replHelp)
	case "angle":
		if len(args) != 1 {
			fmt.Println("usage: /angle deg|rad|grad")
			break
		}
		m, ok := parseAngle(args[0])
		if !ok {
			fmt.Printf("unknown angle unit %q\n", args[0])
			break
		}
		s.cfg.AngleMode = m
	case "mode":
		if len(args) != 1 {
			fmt.Println("usage: /mode norm|fix|sci|eng")
			break
		}
		m, ok := parseMode(args[0])
		if !ok {
			fmt.Printf("unknown display mode %q\n", args[0])
			break
		}
		s.cfg.DisplayMode = m
	case "fix":
		if len(args) != 1 {
			fmt.Println("usage: /fix n")
			break
		}
		n, err := strconv.Atoi(args[0])
		if err != nil {
			fmt.Printf("not a digit count: %q\n", args[0])
			break
		}
		s.cfg.FixDecimals = n
	case "set":
		s.set(args)
	case "vars":
		names := make([]string, 0, len(s.memory))
		for name := range s.memory {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Printf("%s = %s\n", name, numText(s.memory[name]))
		}
	case "del":
		for _, name := range args {
			delete(s.memory, name)
		}
	case "read":
		if len(args) != 1 {
			fmt.Println("usage: /read file")
			break
		}
		if err := s.readMemory(args[0]); err != nil {
			fmt.Println(err)
		}
	case "write":
		if len(args) != 1 {
			fmt.Println("usage: /write file")
			break
		}
		if err := s.writeMemory(args[0]); err != nil {
			fmt.Println(err)
		}
	default:
		fmt.Printf("unknown command /%s (try /help)\n", cmd)
	}
	return true
}

func (s *session) set(args []string) {
	if len(args) == 0 {
		fmt.Println("usage: /set name [expr]")
		return
	}
	name := args[0]
	if !validName(name) {
		fmt.Printf("%q cannot name a memory entry\n", name)
		return
	}
	if len(args) == 1 {
		if !s.hasAns {
			fmt.Println("nothing to store yet")
			return
		}
		s.memory[name] = s.ans
		return
	}
	r, err := scicalc.EvaluateExpression(s.expand(strings.Join(args[1:], " ")), s.cfg)
	if err != nil {
		fmt.Println(err)
		return
	}
	s.memory[name] = r.Value
}

// validName accepts letter-only names that the engine does not already lex
// as functions, operators, or constants.
func validName(name string) bool {
	if name == "" || name == "ans" {
		return false
	}
	for _, r := range name {
		if r < 'a' || 'z' < r {
			return false
		}
	}
	return len(scicalc.Tokenize(name)) == 0
}

func (s *session) evaluate(line string) {
	r, err := scicalc.EvaluateExpression(s.expand(line), s.cfg)
	if err != nil {
		if s.echo {
			fmt.Printf("%s = %v\n", line, err)
		} else {
			fmt.Println(err)
		}
		return
	}
	s.ans, s.hasAns = r.Value, true
	if s.echo {
		fmt.Printf("%s = %s\n", line, r.Display)
		return
	}
	fmt.Println(r.Display)
}

// expand substitutes memory names and "ans" with their parenthesized
// values. Substitution is on whole words only, so a one-letter name cannot
// clobber part of a function name or a longer memory name.
func (s *session) expand(line string) string {
	if s.hasAns {
		line = replaceWord(line, "ans", s.ans)
	}
	for name, v := range s.memory {
		line = replaceWord(line, name, v)
	}
	return line
}

// replaceWord substitutes every whole-word occurrence of name with the
// parenthesized value. Names contain only letters, so no quoting is needed.
func replaceWord(line, name string, v float64) string {
	re := regexp.MustCompile(`\b` + name + `\b`)
	return re.ReplaceAllLiteralString(line, "("+numText(v)+")")
}

// numText renders a value so that it re-tokenizes as the same number. The
// 'f' format avoids an exponent marker that the lexer would read as the
// constant e.
func numText(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func (s *session) readMemory(name string) error {
	data, err := readInput(name)
	if err != nil {
		return err
	}
	loaded := make(map[string]float64)
	if err := yaml.Unmarshal([]byte(data), &loaded); err != nil {
		return fmt.Errorf("reading %s: %w", name, err)
	}
	for k, v := range loaded {
		if !validName(k) {
			return fmt.Errorf("reading %s: %q cannot name a memory entry", name, k)
		}
		s.memory[k] = v
	}
	return nil
}

func (s *session) writeMemory(name string) error {
	data, err := yaml.Marshal(s.memory)
	if err != nil {
		return err
	}
	return os.WriteFile(name, data, 0o644)
}

func readLines(name string) ([]string, error) {
	data, err := readInput(name)
	if err != nil {
		return nil, err
	}
	var lines []string
	for _, line := range strings.Split(data, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines, nil
}

// readInput reads a file and decodes it to UTF-8 if it looks UTF-16
// encoded, which editors on some platforms produce.
func readInput(name string) (string, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return "", err
	}
	if looksUTF16(data) {
		dec := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
		decoded, err := dec.String(string(data))
		if err != nil {
			return "", fmt.Errorf("decoding %s: %w", name, err)
		}
		return decoded, nil
	}
	return string(data), nil
}

func looksUTF16(data []byte) bool {
	if len(data) >= 2 && (data[0] == 0xFF && data[1] == 0xFE || data[0] == 0xFE && data[1] == 0xFF) {
		return true
	}
	return len(data) > 7 && data[1] == 0 && data[3] == 0 && data[5] == 0 && data[7] == 0
}
