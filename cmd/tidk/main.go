// Command tidk identifies and characterizes telomeric tandem repeats in
// assembled genomes.
package main

func main() {
	Execute()
}
